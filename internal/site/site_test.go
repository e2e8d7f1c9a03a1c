package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b_quiz.html", "a_quiz.html", "index.html", "uploader.html", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub.html"), 0o755))

	files, err := New(root).QuizFiles([]string{"index.html", "uploader.html"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a_quiz.html", "b_quiz.html"}, files)
}

func TestQuizFiles_EmptyDir(t *testing.T) {
	files, err := New(t.TempDir()).QuizFiles([]string{"index.html"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestQuizFiles_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope")).QuizFiles(nil)
	assert.Error(t, err)
}

func TestReadWrite(t *testing.T) {
	dir := New(t.TempDir())

	require.NoError(t, dir.Write("quiz.html", "<html>контент</html>"))

	content, err := dir.Read("quiz.html")
	require.NoError(t, err)
	assert.Equal(t, "<html>контент</html>", content)
}

func TestRead_Missing(t *testing.T) {
	_, err := New(t.TempDir()).Read("absent.html")
	assert.Error(t, err)
}
