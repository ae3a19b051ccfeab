package replacer

import (
	"os"
	"path/filepath"
	"testing"

	"cowtrie/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	r, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LRUKReplacer{}, r)
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"lru_k", Config{Policy: "lru_k", NumFrames: 10, K: 3}, true},
		{"lru ignores k", Config{Policy: "lru", NumFrames: 10}, true},
		{"no frames", Config{Policy: "lru_k", K: 2}, false},
		{"no k", Config{Policy: "lru_k", NumFrames: 10}, false},
		{"unknown policy", Config{Policy: "clock", NumFrames: 10, K: 2}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrInvalidParam)
			_, err = New(&tc.cfg)
			assert.ErrorIs(t, err, common.ErrInvalidParam)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(map[string]interface{}{
		"policy":       "lru",
		"num_frames":   "32",
		"synchronized": "true",
	})
	require.NoError(t, err)
	assert.Equal(t, &Config{Policy: "lru", NumFrames: 32, K: 2, Synchronized: true}, cfg)

	r, err := New(cfg)
	require.NoError(t, err)
	require.IsType(t, &SyncReplacer{}, r)
	assert.Equal(t, common.ReplacerPolicyLRU, r.Policy())

	_, err = DecodeConfig(map[string]interface{}{"frames": 3})
	assert.ErrorIs(t, err, common.ErrInvalidParam)
	_, err = DecodeConfig(map[string]interface{}{"k": -1})
	assert.ErrorIs(t, err, common.ErrInvalidParam)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replacer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"policy": "lru_k", "num_frames": 128, "k": 4}`), 0644))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.NumFrames)
	assert.Equal(t, 4, cfg.K)

	_, err = LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	_, err = LoadConfigFromFile(path)
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(envNumFrames, "16")
	t.Setenv(envK, "3")
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, common.ReplacerPolicyLRUK, cfg.Policy)
	assert.Equal(t, 16, cfg.NumFrames)
	assert.Equal(t, 3, cfg.K)
	assert.False(t, cfg.Synchronized)

	t.Setenv(envK, "zero")
	_, err = LoadConfigFromEnv()
	assert.ErrorIs(t, err, common.ErrInvalidParam)
}
