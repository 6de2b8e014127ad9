package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/dropdown/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dropdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Hint:      "type to search",
		Filter:    true,
		MaxHeight: 200,
		Style:     "default",
		Clipboard: "window",
	}, cfg)
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
dictionary: /usr/share/dict/words
filter: false
width: 320
style: GTA
`)
	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/share/dict/words", cfg.Dictionary)
	assert.False(t, cfg.Filter)
	assert.Equal(t, float32(320), cfg.Width)
	assert.Equal(t, "gta", cfg.Style)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "select-on-focus: false\nhint: from file\n")
	t.Setenv("DROPDOWN_SELECT_ON_FOCUS", "true")
	t.Setenv("DROPDOWN_HINT", "from env")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.True(t, cfg.SelectOnFocus)
	assert.Equal(t, "from env", cfg.Hint)
}

func TestExplicitOverrideWins(t *testing.T) {
	t.Setenv("DROPDOWN_MAX_HEIGHT", "50")
	v := config.New()
	v.Set(config.KeyMaxHeight, 75)

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, float32(75), cfg.MaxHeight)
}

func TestMissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"negative width":    "width: -1\n",
		"negative height":   "max-height: -5\n",
		"unknown style":     "style: neon\n",
		"unknown clipboard": "clipboard: carrier-pigeon\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(config.New(), writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
