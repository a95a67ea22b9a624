package core

import (
	"bufio"
	"os"
	gopath "path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/brunobernard/licenser/internal/models"
)

// Default ignore file names, tried in order when --ignore-file is not given
const (
	LicenseIgnoreFile = ".licenseignore"
	GitIgnoreFile     = ".gitignore"
)

// excludeDirs are directory names whose contents are never processed:
// version control metadata, dependencies, and build artifacts.
var excludeDirs = map[string]struct{}{
	".git":          {},
	".svn":          {},
	".hg":           {},
	"__pycache__":   {},
	".pytest_cache": {},
	".mypy_cache":   {},
	"node_modules":  {},
	"vendor":        {},
	"third_party":   {},
	"venv":          {},
	".venv":         {},
	"env":           {},
	".env":          {},
	"build":         {},
	"dist":          {},
	"target":        {},
	"out":           {},
	".idea":         {},
	".vscode":       {},
	".vs":           {},
	"bin":           {},
	"public/build":  {},
	"public/hot":    {},
	".air":          {},
}

// excludePatterns are filename globs that are never processed: minified
// and generated assets, lock files, data formats, and license files
// themselves.
var excludePatterns = []string{
	"*.min.js",
	"*.min.css",
	"*.generated.*",
	"*.pb.go",
	"*.pb.cc",
	"*_pb2.py",
	"*.log",
	"*.lock",
	"*.sum",
	"*.json",
	"*.toml",
	"*.yml",
	"*.yaml",
	"*.md",
	"*.svg",
	"*.sh",
	"LICENSE",
	"NOTICE",
	".gitkeep",
	".gitignore",
	".licenseignore",
	".go-version",
	"go.mod",
	".pre-commit-config.yaml",
	".golangci.yml",
}

// ResolveIgnoreFile picks the ignore file to load: the explicit argument
// if it exists, else .licenseignore, else .gitignore, else none (empty).
func ResolveIgnoreFile(explicit, workDir string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
	}
	for _, name := range []string{LicenseIgnoreFile, GitIgnoreFile} {
		candidate := filepath.Join(workDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadIgnoreRules parses an ignore file into rules. Blank lines and
// comments are skipped; "!" negates; a trailing "/" marks a
// directory-only rule. A missing or unreadable file yields no rules.
func LoadIgnoreRules(path string) []models.IgnoreRule {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var rules []models.IgnoreRule
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rule := models.IgnoreRule{Pattern: line}
		if strings.HasPrefix(rule.Pattern, "!") {
			rule.Negate = true
			rule.Pattern = rule.Pattern[1:]
		}
		if strings.HasSuffix(rule.Pattern, "/") {
			rule.DirOnly = true
			rule.Pattern = strings.TrimSuffix(rule.Pattern, "/")
		}
		rules = append(rules, rule)
	}
	return rules
}

// IgnoreMatcher decides which files are excluded from processing,
// combining the static exclusion lists with loaded ignore rules.
type IgnoreMatcher struct {
	rules   []models.IgnoreRule
	workDir string
}

// NewIgnoreMatcher creates a matcher evaluating rules against paths
// relative to workDir
func NewIgnoreMatcher(rules []models.IgnoreRule, workDir string) *IgnoreMatcher {
	return &IgnoreMatcher{rules: rules, workDir: workDir}
}

// ShouldSkip returns true if the file must not be processed
func (m *IgnoreMatcher) ShouldSkip(path string) bool {
	rel := m.relPath(path)

	for _, part := range strings.Split(rel, "/") {
		if _, ok := excludeDirs[part]; ok {
			return true
		}
	}

	base := gopath.Base(rel)
	for _, pattern := range excludePatterns {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}

	// Last matching rule wins: fold over the rules carrying the
	// running skip decision so negated rules can re-include.
	skip := false
	for _, rule := range m.rules {
		if ruleMatches(rule, rel, base) {
			skip = !rule.Negate
		}
	}
	return skip
}

// relPath normalizes a path to slash-separated form relative to the
// working directory, falling back to the path as given.
func (m *IgnoreMatcher) relPath(path string) string {
	p := path
	if m.workDir != "" {
		if rel, err := filepath.Rel(m.workDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			p = rel
		}
	}
	return filepath.ToSlash(p)
}

// ruleMatches evaluates one rule against a slash-relative path.
// Directory-only rules match when the pattern matches any ancestor
// directory; plain rules match the relative path or the basename.
func ruleMatches(rule models.IgnoreRule, rel, base string) bool {
	if rule.DirOnly {
		for dir := gopath.Dir(rel); dir != "." && dir != "/"; dir = gopath.Dir(dir) {
			if ok, _ := doublestar.Match(rule.Pattern, dir); ok {
				return true
			}
			if ok, _ := doublestar.Match(rule.Pattern, gopath.Base(dir)); ok {
				return true
			}
		}
		return false
	}
	if ok, _ := doublestar.Match(rule.Pattern, rel); ok {
		return true
	}
	ok, _ := doublestar.Match(rule.Pattern, base)
	return ok
}
