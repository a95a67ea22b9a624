package models

// IgnoreRule is a single parsed line from an ignore file. Rules are
// evaluated in file order and the last matching rule wins, so a negated
// rule can re-include a path excluded by an earlier one.
type IgnoreRule struct {
	Pattern string
	Negate  bool
	DirOnly bool
}
