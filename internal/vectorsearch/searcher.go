package vectorsearch

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/hr-copilot/internal/types"
)

// previewLimit bounds the candidate text excerpt carried through the pipeline.
const previewLimit = 400

// ScoreMode selects how raw index scores are adapted to the pipeline's
// "larger is better" convention.
type ScoreMode string

// Score modes.
const (
	// ScoreModeSimilarity passes scores through unchanged.
	ScoreModeSimilarity ScoreMode = "similarity"
	// ScoreModeDistance maps a distance d to 1/(1+d) so smaller distances
	// become larger scores.
	ScoreModeDistance ScoreMode = "distance"
)

// Searcher is the collaborator contract the retrieval worker depends on.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]types.Candidate, error)
}

// QdrantSearcher composes an embedder and a Qdrant client into the
// search(query_text, k) collaborator contract.
type QdrantSearcher struct {
	embedder Embedder
	client   *Client
	mode     ScoreMode
	logger   *zap.Logger
}

// NewQdrantSearcher creates a searcher. An empty mode defaults to similarity.
func NewQdrantSearcher(embedder Embedder, client *Client, mode ScoreMode, logger *zap.Logger) *QdrantSearcher {
	if mode == "" {
		mode = ScoreModeSimilarity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QdrantSearcher{embedder: embedder, client: client, mode: mode, logger: logger}
}

// Search embeds the query, searches the index, and adapts the hits into
// candidates with non-negative, higher-is-better scores. Collaborator
// failures propagate; the core makes no retry decision.
func (s *QdrantSearcher) Search(ctx context.Context, query string, k int) ([]types.Candidate, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query failed: %w", err)
	}

	points, err := s.client.Search(ctx, vector, k)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.Candidate, 0, len(points))
	for _, p := range points {
		candidates = append(candidates, s.toCandidate(p))
	}

	s.logger.Debug("vector search complete",
		zap.Int("k", k),
		zap.Int("hits", len(candidates)))

	return candidates, nil
}

func (s *QdrantSearcher) toCandidate(p ScoredPoint) types.Candidate {
	text := payloadString(p.Payload, payloadText)

	preview := text
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}

	metadata := map[string]string{}
	if src := payloadString(p.Payload, payloadSource); src != "" {
		metadata["source"] = src
	}

	return types.Candidate{
		ID:       payloadInt(p.Payload, payloadRowIndex),
		Category: payloadString(p.Payload, payloadCategory),
		Score:    adaptScore(p.Score, s.mode),
		Preview:  preview,
		Metadata: metadata,
	}
}

// adaptScore normalizes a raw index score onto the higher-is-better scale.
// Scores are clamped to non-negative either way.
func adaptScore(raw float64, mode ScoreMode) float64 {
	var score float64
	switch mode {
	case ScoreModeDistance:
		score = 1.0 / (1.0 + raw)
	default:
		score = raw
	}
	if score < 0 {
		return 0
	}
	return score
}

func payloadString(payload map[string]any, key string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func payloadInt(payload map[string]any, key string) int {
	switch v := payload[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
