package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/styled"
)

const buttonYAML = `name: Button
tag: button
base:
  class: btn
  type: button
variants:
  intent:
    primary:
      class: btn-primary
    secondary:
      class: btn-secondary
  size:
    lg:
      class: btn-lg
      style:
        padding: 1rem
  disabled:
    "true":
      class: btn-disabled
defaults:
  intent: primary
compound:
  - when:
      intent: primary
      size: lg
    props:
      class: btn-primary-lg
order: [intent, size, disabled]
`

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDefinition(t, "button.styled.yaml", buttonYAML)

	def, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Button", def.Name)
	assert.Equal(t, "button", def.Tag)
	assert.Equal(t, "btn", def.Base["class"])
	assert.Equal(t, []string{"intent", "size", "disabled"}, def.Order)
	require.Len(t, def.Compound, 1)
	assert.Equal(t, "btn-primary-lg", def.Compound[0].Props["class"])
}

func TestLoad_DefaultsTagToDiv(t *testing.T) {
	path := writeDefinition(t, "box.styled.yaml", "name: Box\n")

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "div", def.Tag)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.styled.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeDefinition(t, "bad.styled.yaml", "name: [unclosed\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeDefinition(t, "anon.styled.yaml", "tag: button\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid definition")
	})
}

func TestDefinitionConfig(t *testing.T) {
	path := writeDefinition(t, "button.styled.yaml", buttonYAML)
	def, err := Load(path)
	require.NoError(t, err)

	cfg := def.Config()
	assert.Equal(t, "Button", cfg.Name)
	assert.Equal(t, styled.Selection{"intent": "primary"}, cfg.DefaultVariants)
	assert.Equal(t, styled.Props{"class": "btn-primary"}, cfg.Variants["intent"]["primary"])

	// Nested style maps lift into styled.Style.
	lg := cfg.Variants["size"]["lg"]
	assert.Equal(t, styled.Style{"padding": "1rem"}, lg["style"])
}

func TestDefinitionComponent(t *testing.T) {
	path := writeDefinition(t, "button.styled.yaml", buttonYAML)
	def, err := Load(path)
	require.NoError(t, err)

	c, err := def.Component()
	require.NoError(t, err)

	got := c.Resolve(styled.Props{"size": "lg"})
	assert.Equal(t, "btn btn-primary btn-lg btn-primary-lg", got["class"])
	assert.Equal(t, styled.Style{"padding": "1rem"}, got["style"])
}

func TestDefinitionComponent_InvalidConfig(t *testing.T) {
	path := writeDefinition(t, "bad.styled.yaml", `name: Bad
variants:
  class:
    a:
      id: x
`)
	def, err := Load(path)
	require.NoError(t, err)

	_, err = def.Component()
	assert.Error(t, err)
}

func TestParseSelection(t *testing.T) {
	path := writeDefinition(t, "button.styled.yaml", buttonYAML)
	def, err := Load(path)
	require.NoError(t, err)

	t.Run("string and bool categories", func(t *testing.T) {
		sel, err := def.ParseSelection(map[string]string{
			"intent":   "secondary",
			"disabled": "true",
		})
		require.NoError(t, err)
		assert.Equal(t, styled.Selection{"intent": "secondary", "disabled": true}, sel)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := def.ParseSelection(map[string]string{"ghost": "on"})
		assert.Error(t, err)
	})

	t.Run("non-bool value on boolean category", func(t *testing.T) {
		_, err := def.ParseSelection(map[string]string{"disabled": "maybe"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boolean")
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ui"), 0755))

	for _, name := range []string{"button.styled.yaml", "ui/card.styled.yaml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("name: X\n"), 0644))
	}

	files, err := Discover([]string{filepath.Join(dir, "**", "*.styled.yaml")})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "button.styled.yaml"),
		filepath.Join(dir, "ui", "card.styled.yaml"),
	}, files)
}

func TestDiscover_DeduplicatesOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "button.styled.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: X\n"), 0644))

	files, err := Discover([]string{
		filepath.Join(dir, "*.styled.yaml"),
		filepath.Join(dir, "**", "*.styled.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscover_BadPattern(t *testing.T) {
	_, err := Discover([]string{"[unclosed"})
	assert.Error(t, err)
}
