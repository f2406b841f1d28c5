package markup

// Issue describes the kind of problem detected during parsing,
// e.g. an unclosed span or a redundant escape.
type Issue int

const (
	IssueUnclosedTag Issue = iota
	IssueRedundantEscape
	IssueUnexpectedEOL
)
