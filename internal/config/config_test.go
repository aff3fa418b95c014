package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{"qdrant_url": "http://localhost:6333", "top_k": 7}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:6333", cfg.QdrantURL)
	assert.Equal(t, 7, cfg.TopK)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("")
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "not json"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("QDRANT_URL", "http://qdrant:6333")
	t.Setenv("QDRANT_COLLECTION_NAME", "cv_chunks")
	t.Setenv("TOP_K_DEFAULT", "9")
	t.Setenv("VECTOR_SCORE_MODE", "distance")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://qdrant:6333", cfg.QdrantURL)
	assert.Equal(t, "cv_chunks", cfg.QdrantCollection)
	assert.Equal(t, 9, cfg.TopK)
	assert.Equal(t, "distance", cfg.ScoreMode)
}

func TestFromEnv_InvalidInt(t *testing.T) {
	t.Setenv("TOP_K_DEFAULT", "lots")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := writeConfig(t, `{"qdrant_url": "http://file:6333", "top_k": 3}`)
	t.Setenv("QDRANT_URL", "http://env:6333")
	t.Setenv("TOP_K_DEFAULT", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env:6333", cfg.QdrantURL)
	assert.Equal(t, 3, cfg.TopK)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("QDRANT_URL", "")
	t.Setenv("QDRANT_COLLECTION_NAME", "")
	t.Setenv("TOP_K_DEFAULT", "")
	t.Setenv("MAX_HISTORY_MESSAGES", "")
	t.Setenv("VECTOR_SCORE_MODE", "")
	t.Setenv("LISTEN_ADDR", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCollection, cfg.QdrantCollection)
	assert.Equal(t, DefaultTopK, cfg.TopK)
	assert.Equal(t, DefaultMaxHistory, cfg.MaxHistory)
	assert.Equal(t, DefaultScoreMode, cfg.ScoreMode)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{ScoreMode: "similarity"}).Validate())
	assert.NoError(t, (&Config{ScoreMode: "distance"}).Validate())
	assert.Error(t, (&Config{ScoreMode: "cosine"}).Validate())
	assert.Error(t, (&Config{TopK: -1}).Validate())
	assert.Error(t, (&Config{MaxHistory: -1}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	base := Config{QdrantURL: "http://primary:6333"}
	defaults := Config{QdrantURL: "http://fallback:6333", QdrantCollection: "cv", TopK: 4}

	merged := base.MergeWithDefaults(defaults)
	assert.Equal(t, "http://primary:6333", merged.QdrantURL)
	assert.Equal(t, "cv", merged.QdrantCollection)
	assert.Equal(t, 4, merged.TopK)
}
