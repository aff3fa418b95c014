package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/hr-copilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	candidates []types.Candidate
	err        error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int) ([]types.Candidate, error) {
	return s.candidates, s.err
}

func candidates() []types.Candidate {
	return []types.Candidate{
		{ID: 1, Category: "INFORMATION-TECHNOLOGY", Score: 0.9, Preview: "senior python developer with sql"},
		{ID: 2, Category: "FINANCE", Score: 0.8, Preview: "accountant with excel background"},
		{ID: 3, Category: "INFORMATION-TECHNOLOGY", Score: 0.7, Preview: "java engineer, spring services"},
	}
}

func TestRetrieve_KeywordFilterApplied(t *testing.T) {
	w := NewWorker(&stubSearcher{candidates: candidates()})

	res, err := w.Retrieve(context.Background(), "python", 5, "")
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, 1, res.Candidates[0].ID)
	assert.True(t, res.Debug.KeywordUsed)
}

func TestRetrieve_KeywordFallback(t *testing.T) {
	// An over-specific query matches no previews; the semantic list must
	// survive rather than returning empty-by-filter.
	w := NewWorker(&stubSearcher{candidates: candidates()})

	res, err := w.Retrieve(context.Background(), "quantum basket weaving", 2, "")
	require.NoError(t, err)
	assert.False(t, res.Debug.KeywordUsed)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, 1, res.Candidates[0].ID)
	assert.Equal(t, 2, res.Candidates[1].ID)
}

func TestRetrieve_CategoryFilter(t *testing.T) {
	w := NewWorker(&stubSearcher{candidates: candidates()})

	res, err := w.Retrieve(context.Background(), "no preview match here", 5, "information-technology")
	require.NoError(t, err)
	require.Len(t, res.Candidates, 2)
	for _, c := range res.Candidates {
		assert.Equal(t, "INFORMATION-TECHNOLOGY", c.Category)
	}
	assert.Equal(t, 2, res.Debug.AfterCategory)
}

func TestRetrieve_TruncatesToK(t *testing.T) {
	w := NewWorker(&stubSearcher{candidates: candidates()})

	res, err := w.Retrieve(context.Background(), "zz-no-match", 1, "")
	require.NoError(t, err)
	assert.Len(t, res.Candidates, 1)
}

func TestRetrieve_CollaboratorErrorPropagates(t *testing.T) {
	w := NewWorker(&stubSearcher{err: errors.New("connection refused")})

	_, err := w.Retrieve(context.Background(), "find candidates", 5, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRetrieve_EmptyIndex(t *testing.T) {
	w := NewWorker(&stubSearcher{})

	res, err := w.Retrieve(context.Background(), "anything", 5, "")
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
}
