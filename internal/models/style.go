package models

// CommentStyle describes how header text is rendered as a comment for a
// given file type. Exactly one form is active: a line style (LinePrefix
// set) prepends the prefix to every line, a block style (BlockStart and
// BlockEnd set) wraps the lines in delimiters and prefixes each inner
// line with BlockInner, which may be empty.
type CommentStyle struct {
	LinePrefix string
	BlockStart string
	BlockInner string
	BlockEnd   string
}

// IsBlock returns true if this is a block-delimited style
func (s CommentStyle) IsBlock() bool {
	return s.BlockStart != "" && s.BlockEnd != ""
}

// FormatLine renders a single line of header text in this style.
// A blank line renders as the bare prefix.
func (s CommentStyle) FormatLine(text string) string {
	prefix := s.LinePrefix
	if s.IsBlock() {
		prefix = s.BlockInner
	}
	if prefix == "" {
		return text
	}
	if text == "" {
		return prefix
	}
	return prefix + " " + text
}

// FormatHeader renders the given content lines as a complete comment
// block. Line styles prefix every line; block styles bracket the
// formatted lines with the start and end delimiters.
func (s CommentStyle) FormatHeader(lines []string) []string {
	formatted := make([]string, 0, len(lines)+2)
	if s.IsBlock() {
		formatted = append(formatted, s.BlockStart)
	}
	for _, line := range lines {
		formatted = append(formatted, s.FormatLine(line))
	}
	if s.IsBlock() {
		formatted = append(formatted, s.BlockEnd)
	}
	return formatted
}
