package core

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/brunobernard/licenser/internal/models"
)

// headerWindow is how many lines past any shebang are scanned for an
// existing header.
const headerWindow = 20

const spdxMarker = "SPDX-License-Identifier"

var (
	spdxPattern      = regexp.MustCompile(`SPDX-License-Identifier:\s*(.+?)(?:\s*(?:-->|\*/|$))`)
	copyrightPattern = regexp.MustCompile(`Copyright\s*(?:\(C\)|©)?\s*(\d{4})(?:\s*-\s*(\d{4}))?\s+(.+?)(?:\s*(?:-->|\*/|$))`)
)

// copyrightInfo is the parsed content of a copyright line
type copyrightInfo struct {
	StartYear string
	EndYear   string // empty for a single-year line
	Holder    string
}

// ParseSPDXLine extracts the license identifier from a line containing
// the SPDX marker. The identifier runs to end of line or a closing
// block/HTML comment delimiter.
func ParseSPDXLine(line string) (string, bool) {
	m := spdxPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// parseCopyrightLine extracts years and holder from a copyright line
func parseCopyrightLine(line string) (copyrightInfo, bool) {
	m := copyrightPattern.FindStringSubmatch(line)
	if m == nil {
		return copyrightInfo{}, false
	}
	return copyrightInfo{
		StartYear: m[1],
		EndYear:   m[2],
		Holder:    strings.TrimSpace(m[3]),
	}, true
}

// headerState records what the detection pass found in a file's prefix
type headerState struct {
	spdxIdx      int // -1 if absent
	copyrightIdx int // -1 if absent
}

// Manager applies a target license header to file contents
type Manager struct {
	LicenseID string
	Author    string
	Year      string
	Notice    []string // optional free-text lines appended after the copyright line
}

// NewManager creates a header manager for the given target
func NewManager(licenseID, author, year string, notice []string) *Manager {
	return &Manager{
		LicenseID: licenseID,
		Author:    author,
		Year:      year,
		Notice:    notice,
	}
}

// LoadNotice reads a notice template file into header lines. Trailing
// blank lines are trimmed; interior blanks are kept so they render as
// bare comment-prefix lines. A missing or unreadable template yields no
// notice.
func LoadNotice(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	content := strings.TrimRight(string(data), " \t\r\n")
	if content == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}
	return lines
}

// Process scans the contents for an existing header and computes the
// rewrite needed to match the target, if any. It returns whether the
// file needs an update and the rewritten contents; when no change is
// needed the contents are returned unmodified. Process never touches
// the filesystem.
func (m *Manager) Process(contents string, style models.CommentStyle) (bool, string) {
	lines := splitLines(contents)
	if len(lines) == 0 {
		return false, contents
	}

	start := 0
	if strings.HasPrefix(lines[0], "#!") {
		start = 1
	}
	state := scanHeader(lines, start)

	out := slices.Clone(lines)
	needsUpdate := false

	if state.spdxIdx >= 0 {
		if id, ok := ParseSPDXLine(trimEOL(lines[state.spdxIdx])); ok && id != m.LicenseID {
			needsUpdate = true
			out[state.spdxIdx] = style.FormatLine(m.spdxText()) + lineEnding(lines[state.spdxIdx])
		}
		if state.copyrightIdx >= 0 {
			if updated, ok := m.updateCopyrightYear(trimEOL(lines[state.copyrightIdx]), style); ok {
				needsUpdate = true
				out[state.copyrightIdx] = updated + lineEnding(lines[state.copyrightIdx])
			}
		} else {
			// Header exists but has no copyright line: insert one
			// right after the SPDX line.
			needsUpdate = true
			out = slices.Insert(out, state.spdxIdx+1, style.FormatLine(m.copyrightText())+"\n")
		}
	} else {
		needsUpdate = true
		header := m.formatHeader(style)
		block := make([]string, 0, len(header)+1)
		for _, line := range header {
			block = append(block, line+"\n")
		}
		// Separate the header from existing content unless the
		// insertion point is already blank.
		if start < len(out) && strings.TrimSpace(trimEOL(out[start])) != "" {
			block = append(block, "\n")
		}
		out = slices.Insert(out, start, block...)
	}

	if !needsUpdate {
		return false, contents
	}
	return true, strings.Join(out, "")
}

// scanHeader finds the first SPDX line and first copyright line within
// the detection window. Later duplicates are ignored.
func scanHeader(lines []string, start int) headerState {
	state := headerState{spdxIdx: -1, copyrightIdx: -1}
	for i := start; i < len(lines) && i < start+headerWindow; i++ {
		line := trimEOL(lines[i])
		if state.spdxIdx < 0 && strings.Contains(line, spdxMarker) {
			state.spdxIdx = i
		}
		if state.copyrightIdx < 0 && copyrightPattern.MatchString(line) {
			state.copyrightIdx = i
		}
	}
	return state
}

// updateCopyrightYear rewrites an existing copyright line so its year
// range ends at the target year, keeping the existing holder name.
// Returns false if the line already covers the target year.
func (m *Manager) updateCopyrightYear(line string, style models.CommentStyle) (string, bool) {
	info, ok := parseCopyrightLine(line)
	if !ok {
		return "", false
	}
	if info.EndYear == "" {
		if info.StartYear == m.Year {
			return "", false
		}
	} else if info.EndYear == m.Year {
		return "", false
	}
	text := fmt.Sprintf("Copyright (C) %s-%s  %s", info.StartYear, m.Year, info.Holder)
	return style.FormatLine(text), true
}

func (m *Manager) spdxText() string {
	return fmt.Sprintf("%s: %s", spdxMarker, m.LicenseID)
}

func (m *Manager) copyrightText() string {
	return fmt.Sprintf("Copyright (C) %s  %s", m.Year, m.Author)
}

// formatHeader renders the complete header block: SPDX line, copyright
// line, and the notice block separated by one blank comment line.
func (m *Manager) formatHeader(style models.CommentStyle) []string {
	lines := []string{m.spdxText(), m.copyrightText()}
	if len(m.Notice) > 0 {
		lines = append(lines, "")
		lines = append(lines, m.Notice...)
	}
	return style.FormatHeader(lines)
}

// splitLines splits contents into lines keeping each line's terminator,
// so joining the slice reproduces the input byte for byte.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// trimEOL strips the line terminator, if any
func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// lineEnding returns the terminator of a line so replacements keep the
// original ending. Inserted lines always use "\n".
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return "\n"
	}
	return ""
}
