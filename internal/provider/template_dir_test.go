package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplatesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal", "{{name_snake}}"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "internal", "{{name_snake}}", "model.go.tmpl"),
		[]byte("package {{name}}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# {{Name}}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("ignored"), 0644))

	templates, err := LoadTemplatesDir(dir)
	require.NoError(t, err)
	require.Len(t, templates, 2)

	byPath := map[string]string{}
	for _, tmpl := range templates {
		byPath[tmpl.Path] = tmpl.Body
	}
	assert.Equal(t, "package {{name}}\n", byPath["internal/{{name_snake}}/model.go"], ".tmpl suffix is stripped")
	assert.Equal(t, "# {{Name}}\n", byPath["README.md"])
}

func TestLoadTemplatesDirMissing(t *testing.T) {
	_, err := LoadTemplatesDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadTemplatesDirEmpty(t *testing.T) {
	_, err := LoadTemplatesDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no templates")
}
