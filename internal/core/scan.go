package core

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/brunobernard/licenser/internal/models"
)

// Options controls a scan run
type Options struct {
	Dir       string   // root for the directory walk
	Files     []string // explicit file list; overrides Dir when non-empty
	Recursive bool
	Fix       bool // rewrite files in place; otherwise report only
}

// Scanner walks candidate files, filters them through the ignore
// matcher, and applies the header manager to each.
type Scanner struct {
	manager *Manager
	matcher *IgnoreMatcher
}

// NewScanner creates a scanner from a header manager and ignore matcher
func NewScanner(manager *Manager, matcher *IgnoreMatcher) *Scanner {
	return &Scanner{manager: manager, matcher: matcher}
}

// Run processes every candidate file sequentially, invoking report for
// each one, and returns the aggregate counts. Per-file errors are
// recorded and do not stop the run.
func (s *Scanner) Run(opts Options, report func(models.FileResult)) (models.Summary, error) {
	paths := opts.Files
	if len(paths) == 0 {
		found, err := FindFiles(opts.Dir, opts.Recursive)
		if err != nil {
			return models.Summary{}, err
		}
		paths = found
	}

	var summary models.Summary
	for _, path := range paths {
		if s.matcher.ShouldSkip(path) {
			continue
		}
		summary.Total++

		result := s.processFile(path, opts.Fix)
		switch {
		case result.IsError():
			summary.Errors++
		case result.Changed():
			summary.Updated++
		}
		if report != nil {
			report(result)
		}
	}
	return summary, nil
}

// processFile classifies and, in fix mode, rewrites a single file
func (s *Scanner) processFile(path string, fix bool) models.FileResult {
	style, ok := StyleFor(path)
	if !ok {
		return models.FileResult{Path: path, Status: models.StatusUnsupported}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.FileResult{Path: path, Status: models.StatusReadError, Err: err}
	}
	if len(data) == 0 {
		return models.FileResult{Path: path, Status: models.StatusEmpty}
	}

	needsUpdate, rewritten := s.manager.Process(string(data), style)
	if !needsUpdate {
		return models.FileResult{Path: path, Status: models.StatusOK}
	}
	if !fix {
		return models.FileResult{Path: path, Status: models.StatusNeedsUpdate}
	}

	if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
		return models.FileResult{Path: path, Status: models.StatusWriteError, Err: err}
	}
	return models.FileResult{Path: path, Status: models.StatusUpdated}
}

// FindFiles lists regular files under root. Recursive walks prune
// excluded directories; non-recursive lists the immediate directory
// only.
func FindFiles(root string, recursive bool) ([]string, error) {
	if root == "" {
		root = "."
	}

	var files []string
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() {
				files = append(files, filepath.Join(root, entry.Name()))
			}
		}
		return files, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, excluded := excludeDirs[d.Name()]; excluded && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
