package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrgncr/elayout/pkg/layout"
)

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTOML(t, `
axis = "horizontal"
spacing = "space-between"

[region]
width = 120
height = 40

[[items]]
name = "sidebar"
constraint = "LEFT 0 0 0 0 ABSOLUTE PERCENT 24 100 2147483647 2147483647"

[[items]]
name = "content"
constraint = "LEFT 1 1 0 0 REST PERCENT 0 100 2147483647 2147483647"
preferred_width = 40
preferred_height = 10
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "horizontal", cfg.Axis)
	assert.Equal(t, "space-between", cfg.Spacing)
	assert.Equal(t, 120, cfg.Region.Width)
	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "sidebar", cfg.Items[0].Name)
	assert.Equal(t, 40.0, cfg.Items[1].PreferredWidth)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeTOML(t, `
[region]
width = 80
height = 24

[[items]]
name = "only"
constraint = "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 10 10 2147483647 2147483647"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "vertical", cfg.Axis)
	assert.Equal(t, "pack-center", cfg.Spacing)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing region": `
[[items]]
name = "a"
`,
		"no items": `
[region]
width = 80
height = 24
`,
		"unnamed item": `
[region]
width = 80
height = 24

[[items]]
constraint = "CENTER 0 0 0 0 ABSOLUTE ABSOLUTE 10 10 2147483647 2147483647"
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeTOML(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParseAxisAndSpacing(t *testing.T) {
	axis, err := parseAxis("horizontal")
	require.NoError(t, err)
	assert.Equal(t, layout.Horizontal, axis)

	_, err = parseAxis("diagonal")
	assert.Error(t, err)

	spacing, err := parseSpacing("space-around")
	require.NoError(t, err)
	assert.Equal(t, layout.SpaceAround, spacing)

	_, err = parseSpacing("sparse")
	assert.Error(t, err)
}
