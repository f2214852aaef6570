package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Listbox.Wrap)
	assert.Equal(t, 0.5, cfg.Delay())
	assert.Equal(t, "follow", cfg.Listbox.SelectionMode)
	assert.NotEmpty(t, cfg.Options)
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			svc := NewConfigService(path)

			cfg := DefaultConfig()
			cfg.Listbox.Multi = true
			cfg.Options[0].Selected = true
			require.NoError(t, svc.Save(cfg))

			loaded, err := svc.Load()
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[listbox]
multi = true
typeahead_delay = 1.25
selection_mode = "explicit"

[[options]]
label = "Red"
value = "red"

[[options]]
label = "Green"
disabled = true
`)

	cfg, err := Parse(data, FormatTOML)
	require.NoError(t, err)

	assert.True(t, cfg.Listbox.Multi)
	assert.True(t, cfg.Listbox.Wrap, "unset fields keep their defaults")
	assert.Equal(t, 1.25, cfg.Delay())
	assert.Equal(t, "explicit", cfg.Listbox.SelectionMode)
	assert.Equal(t, "vertical", cfg.Listbox.Orientation)
	require.Len(t, cfg.Options, 2, "listed options replace the samples")
	assert.Equal(t, "red", cfg.Options[0].Key())
	assert.Equal(t, "Green", cfg.Options[1].Key())
	assert.True(t, cfg.Options[1].Disabled)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
listbox:
  orientation: horizontal
  focus_mode: activedescendant
options:
  - label: One
    selected: true
logging:
  level: debug
`)

	cfg, err := Parse(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "horizontal", cfg.Listbox.Orientation)
	assert.Equal(t, "activedescendant", cfg.Listbox.FocusMode)
	require.Len(t, cfg.Options, 1)
	assert.True(t, cfg.Options[0].Selected)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte("[listbox\nmulti = "), FormatTOML)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Listbox.TypeaheadDelay = -1
	cfg.Listbox.SelectionMode = "sometimes"
	cfg.Listbox.Orientation = "diagonal"
	cfg.Listbox.FocusMode = "tab"
	cfg.Logging.Level = "loud"
	cfg.Options = []OptionConfig{
		{Label: "a", Selected: true},
		{Label: "b", Selected: true},
		{Value: "a"},
		{},
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"typeahead_delay",
		"selection_mode",
		"orientation",
		"focus_mode",
		"logging.level",
		`repeats the value "a"`,
		"options[3] needs a label or a value",
		"2 options are selected",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := NewConfigService(filepath.Join(t.TempDir(), "missing.toml")).Load()
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoadLookupOrder(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	svc := NewConfigService("")
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "defaults when nothing exists")

	user := UserConfigPath()
	require.NoError(t, NewConfigService(user).Save(&Config{Listbox: ListboxSettings{Multi: true}}))
	cfg, err = NewConfigService("").Load()
	require.NoError(t, err)
	assert.True(t, cfg.Listbox.Multi)

	require.NoError(t, os.WriteFile(LocalFile, []byte("[listbox]\norientation = \"horizontal\"\n"), 0644))
	svc = NewConfigService("")
	cfg, err = svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "horizontal", cfg.Listbox.Orientation)
	assert.False(t, cfg.Listbox.Multi, "the local file wins over the user config")
	assert.Equal(t, LocalFile, svc.Path())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("ini")
	assert.Error(t, err)

	assert.Equal(t, FormatTOML, FormatFor("x.conf"))
}
