package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := `license = "Apache-2.0"
author = "ACME Corp"
year = "2024"
ignore_file = ".licenseignore"
notice_template = "NOTICE.txt"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Apache-2.0", cfg.License)
	assert.Equal(t, "ACME Corp", cfg.Author)
	assert.Equal(t, "2024", cfg.Year)
	assert.Equal(t, ".licenseignore", cfg.IgnoreFile)
	assert.Equal(t, "NOTICE.txt", cfg.NoticeTemplate)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("license = [broken"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{License: "MIT", Author: "Jane Smith"}
	require.NoError(t, cfg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
