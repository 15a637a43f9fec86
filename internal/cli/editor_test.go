package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEditor writes a shell script that replaces the edited file with body.
func fakeEditor(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	script := "#!/bin/sh\ncat > \"$1\" <<'EOF'\n" + body + "EOF\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestGetEditor(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "code --wait", getEditor())

	t.Setenv("VISUAL", "")
	assert.Equal(t, "vim", getEditor())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "", getEditor())
}

func TestEditInEditorNoEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	_, err := EditInEditor([]byte("test"), ".yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDITOR not set")
}

func TestEditInEditorWithTrueCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "true")

	content := []byte("test content")
	result, err := EditInEditor(content, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, content, result)
}

func TestEditInEditorNonZeroExit(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	_, err := EditInEditor([]byte("test"), ".yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor exited with status")
}

func TestEditInEditorContentModified(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", fakeEditor(t, "modified\n"))

	result, err := EditInEditor([]byte("original"), ".yaml")
	require.NoError(t, err)
	assert.Equal(t, "modified\n", string(result))
}

type editDoc struct {
	Name   string   `yaml:"name"`
	Phones []string `yaml:"phones,omitempty"`
}

func TestEditYAML(t *testing.T) {
	t.Run("applies edited document", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", fakeEditor(t, "name: Grace\nphones: [\"555\", \"666\"]\n"))

		doc := editDoc{Name: "Ada"}
		require.NoError(t, EditYAML(&doc, "Editing contact #1"))
		assert.Equal(t, "Grace", doc.Name)
		assert.Equal(t, []string{"555", "666"}, doc.Phones)
	})

	t.Run("unchanged document round-trips", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "true")

		doc := editDoc{Name: "Ada", Phones: []string{"555"}}
		require.NoError(t, EditYAML(&doc, "header"))
		assert.Equal(t, editDoc{Name: "Ada", Phones: []string{"555"}}, doc)
	})

	t.Run("invalid YAML is reported", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", fakeEditor(t, "name: [unterminated\n"))

		doc := editDoc{Name: "Ada"}
		err := EditYAML(&doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid YAML")
		assert.Equal(t, "Ada", doc.Name)
	})
}

func TestRunEditorEmptyCommand(t *testing.T) {
	err := runEditor("", "/tmp/test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty editor command")
}

func TestRunEditorNonExistentCommand(t *testing.T) {
	err := runEditor("nonexistent-editor-command-12345", "/tmp/test.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run editor")
}
