package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("email: teacher@example.com\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "teacher@example.com", cfg.Email)
	assert.Equal(t, DefaultConverter, cfg.Converter)
	assert.Equal(t, []string{"index.html", "uploader.html"}, cfg.Reserved)
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizsite.yaml")
	content := "email: teacher@example.com\nconverter: /usr/local/bin/pandoc\nreserved:\n  - index.html\n  - about.html\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/pandoc", cfg.Converter)
	assert.Equal(t, []string{"index.html", "about.html"}, cfg.Reserved)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("email: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
