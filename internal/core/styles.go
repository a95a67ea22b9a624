package core

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/brunobernard/licenser/internal/models"
)

// Common comment styles
var (
	styleHash  = models.CommentStyle{LinePrefix: "#"}
	styleSlash = models.CommentStyle{LinePrefix: "//"}
	styleDash  = models.CommentStyle{LinePrefix: "--"}
	styleQuote = models.CommentStyle{LinePrefix: `"`}
	styleCSS   = models.CommentStyle{BlockStart: "/*", BlockInner: " *", BlockEnd: " */"}
	styleHTML  = models.CommentStyle{BlockStart: "<!--", BlockEnd: "-->"}
)

// extensionStyles maps lowercase file extensions to comment styles
var extensionStyles = map[string]models.CommentStyle{
	".sh":    styleHash,
	".bash":  styleHash,
	".zsh":   styleHash,
	".fish":  styleHash,
	".py":    styleHash,
	".rb":    styleHash,
	".pl":    styleHash,
	".r":     styleHash,
	".yaml":  styleHash,
	".yml":   styleHash,
	".toml":  styleHash,
	".cmake": styleHash,

	".go":     styleSlash,
	".js":     styleSlash,
	".jsx":    styleSlash,
	".ts":     styleSlash,
	".tsx":    styleSlash,
	".c":      styleSlash,
	".cpp":    styleSlash,
	".cc":     styleSlash,
	".cxx":    styleSlash,
	".h":      styleSlash,
	".hpp":    styleSlash,
	".hh":     styleSlash,
	".hxx":    styleSlash,
	".java":   styleSlash,
	".scala":  styleSlash,
	".kt":     styleSlash,
	".swift":  styleSlash,
	".cs":     styleSlash,
	".rs":     styleSlash,
	".php":    styleSlash,
	".m":      styleSlash,
	".mm":     styleSlash,
	".gradle": styleSlash,
	".groovy": styleSlash,
	".scss":   styleSlash,
	".sass":   styleSlash,
	".less":   styleSlash,

	".sql": styleDash,
	".lua": styleDash,
	".hs":  styleDash,
	".elm": styleDash,

	".vim": styleQuote,

	".css": styleCSS,

	".html": styleHTML,
	".xml":  styleHTML,
	".svg":  styleHTML,
}

// specialFiles maps well-known build and tooling filenames to comment
// styles. Checked before extension lookup.
var specialFiles = map[string]models.CommentStyle{
	"Dockerfile":     styleHash,
	"Makefile":       styleHash,
	"Jenkinsfile":    styleSlash,
	"Vagrantfile":    styleHash,
	"Rakefile":       styleHash,
	"Gemfile":        styleHash,
	"Podfile":        styleHash,
	"Fastfile":       styleHash,
	"CMakeLists.txt": styleHash,
}

// Shebang interpreter keywords, bucketed by comment style
var (
	shebangHashLangs  = []string{"python", "sh", "bash", "ruby"}
	shebangSlashLangs = []string{"node", "javascript"}
)

// StyleFromShebang infers a comment style from a shebang line. Returns
// false if the line is not a shebang or names an unknown interpreter.
func StyleFromShebang(firstLine string) (models.CommentStyle, bool) {
	if !strings.HasPrefix(firstLine, "#!") {
		return models.CommentStyle{}, false
	}
	for _, lang := range shebangHashLangs {
		if strings.Contains(firstLine, lang) {
			return styleHash, true
		}
	}
	for _, lang := range shebangSlashLangs {
		if strings.Contains(firstLine, lang) {
			return styleSlash, true
		}
	}
	return models.CommentStyle{}, false
}

// StyleFor determines the comment style for a file. Special filenames
// take precedence over extension lookup; extensionless files fall back
// to shebang sniffing, which reads the first line of the file. Returns
// false if no style applies (the file is unsupported, not an error).
func StyleFor(path string) (models.CommentStyle, bool) {
	base := filepath.Base(path)
	if style, ok := specialFiles[base]; ok {
		return style, true
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext != "" {
		style, ok := extensionStyles[ext]
		return style, ok
	}

	return StyleFromShebang(readFirstLine(path))
}

// readFirstLine reads the first line of a file, best effort. Read
// failures yield an empty string so the file falls through as
// unsupported rather than erroring.
func readFirstLine(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
