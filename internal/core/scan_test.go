package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brunobernard/licenser/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(t *testing.T, workDir string) *Scanner {
	t.Helper()
	manager := NewManager("MIT", "Jane Smith", "2025", nil)
	matcher := NewIgnoreMatcher(nil, workDir)
	return NewScanner(manager, matcher)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func collectResults(results map[string]models.FileStatus) func(models.FileResult) {
	return func(res models.FileResult) {
		results[filepath.Base(res.Path)] = res.Status
	}
}

func TestRun_FixMode(t *testing.T) {
	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.py", "print('a')\n")
	bPath := writeFile(t, dir, "b.py",
		"# SPDX-License-Identifier: MIT\n"+
			"# Copyright (C) 2023  Jane Smith\n"+
			"print('b')\n")

	s := newTestScanner(t, dir)
	results := map[string]models.FileStatus{}
	summary, err := s.Run(Options{Dir: dir, Recursive: true, Fix: true}, collectResults(results))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Updated)
	assert.Zero(t, summary.Errors)
	assert.Equal(t, models.StatusUpdated, results["a.py"])
	assert.Equal(t, models.StatusUpdated, results["b.py"])

	assert.Equal(t,
		"# SPDX-License-Identifier: MIT\n"+
			"# Copyright (C) 2025  Jane Smith\n"+
			"\n"+
			"print('a')\n",
		readFile(t, aPath))
	assert.Equal(t,
		"# SPDX-License-Identifier: MIT\n"+
			"# Copyright (C) 2023-2025  Jane Smith\n"+
			"print('b')\n",
		readFile(t, bPath))
}

func TestRun_FixThenReRunIsClean(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "print('a')\n")

	s := newTestScanner(t, dir)
	_, err := s.Run(Options{Dir: dir, Recursive: true, Fix: true}, nil)
	require.NoError(t, err)

	summary, err := s.Run(Options{Dir: dir, Recursive: true, Fix: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Zero(t, summary.Updated)
}

func TestRun_CheckModeLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	content := "print('a')\n"
	aPath := writeFile(t, dir, "a.py", content)

	s := newTestScanner(t, dir)
	results := map[string]models.FileStatus{}
	summary, err := s.Run(Options{Dir: dir, Recursive: true}, collectResults(results))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, models.StatusNeedsUpdate, results["a.py"])
	assert.Equal(t, content, readFile(t, aPath), "check mode must not modify files")
}

func TestRun_ClassifiesUnsupportedAndEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blob.bin", "\x00\x01")
	writeFile(t, dir, "empty.py", "")

	s := newTestScanner(t, dir)
	results := map[string]models.FileStatus{}
	summary, err := s.Run(Options{Dir: dir, Recursive: true}, collectResults(results))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Zero(t, summary.Updated)
	assert.Zero(t, summary.Errors)
	assert.Equal(t, models.StatusUnsupported, results["blob.bin"])
	assert.Equal(t, models.StatusEmpty, results["empty.py"])
}

func TestRun_SkipsIgnoredFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "print()\n")
	writeFile(t, dir, filepath.Join("node_modules", "dep.js"), "x\n")
	writeFile(t, dir, "data.json", "{}\n")

	s := newTestScanner(t, dir)
	summary, err := s.Run(Options{Dir: dir, Recursive: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
}

func TestRun_ExplicitFileListOverridesWalk(t *testing.T) {
	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.py", "print('a')\n")
	writeFile(t, dir, "b.py", "print('b')\n")

	s := newTestScanner(t, dir)
	summary, err := s.Run(Options{Dir: dir, Files: []string{aPath}, Recursive: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
}

func TestRun_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.py", "print()\n")
	writeFile(t, dir, filepath.Join("sub", "nested.py"), "print()\n")

	s := newTestScanner(t, dir)
	summary, err := s.Run(Options{Dir: dir, Recursive: false}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
}

func TestRun_ReadErrorIsNonFatal(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	dir := t.TempDir()
	locked := writeFile(t, dir, "locked.py", "print()\n")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0644) })
	writeFile(t, dir, "open.py", "print()\n")

	s := newTestScanner(t, dir)
	results := map[string]models.FileStatus{}
	summary, err := s.Run(Options{Dir: dir, Recursive: true}, collectResults(results))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, models.StatusReadError, results["locked.py"])
	assert.Equal(t, models.StatusNeedsUpdate, results["open.py"])
}

func TestFindFiles_PrunesExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x\n")
	writeFile(t, dir, filepath.Join(".git", "config.py"), "x\n")
	writeFile(t, dir, filepath.Join("vendor", "dep.py"), "x\n")

	files, err := FindFiles(dir, true)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "a.py"), files[0])
}
