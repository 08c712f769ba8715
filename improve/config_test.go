package improve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("max_extra: 2\nreplays: 7\nseed: 42\njitter: 0.1\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.MaxExtra)
		assert.Equal(t, 7, cfg.Replays)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 0.1, cfg.Jitter)
		assert.Equal(t, DefaultConfig().Concurrency, cfg.Concurrency)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, doc := range []string{
			"replays: 0",
			"max_extra: -1",
			"concurrency: 0",
			"min_depth: -2",
			"jitter: -1",
			"replays: [1, 2]",
		} {
			_, err := ParseConfig([]byte(doc))
			assert.Error(t, err, doc)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "improve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 3\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxDepth)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
