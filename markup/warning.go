package markup

// Warning represents details about a non-critical issue that occurred
// during parsing. Parsing still succeeded and produced a tree/output,
// but something about the input was inconsistent, ambiguous, or malformed.
type Warning struct {
	// Node is the type of the node or construct that is inconsistent in
	// some way, e.g. an unclosed BOLD span or a redundant ESCAPE.
	Node NodeType `json:"node"`

	// Index is the byte offset in the raw input string where the problem
	// was detected.
	//
	// IMPORTANT: Index is a byte position, not a character (rune) index.
	// UI code that works with runes must convert the byte index into a
	// rune index (e.g. using utf8.RuneCountInString(s[:index])) before
	// highlighting or slicing by "characters".
	Index int `json:"index"`

	// Near is an optional short snippet (often a single character or a few
	// characters) from the raw input around Index that likely caused the
	// problem.
	Near string `json:"near"`

	// Issue describes the category of the problem (e.g. unclosed tag,
	// redundant escape).
	Issue Issue `json:"issue"`

	// Description is a human-readable explanation of what went wrong.
	Description string `json:"description"`
}
