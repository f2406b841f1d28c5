package markup

// SpanNode represents a resolved delimiter-wrapped region of text,
// e.g. type BOLD or HEADER.
//
// SpanNode embeds BaseNode and overrides its Markup method.
type SpanNode struct {
	*BaseNode

	// Start is the byte offset of the span's opening delimiter in the raw input.
	Start int `json:"start"`

	// End is the byte offset just past the span's closing delimiter.
	// For line spans it is the byte offset of the paragraph end.
	End int `json:"end"`

	// Closed reports whether a valid closing delimiter was found for the span.
	// A span that never closes does not survive into the final tree: it is
	// replaced by literal text covering its own delimiters.
	Closed bool `json:"closed"`
}

// Markup extracts concatenated markup of the node's children
// and wraps it with the delimiters for its type, e.g. '__' for BOLD,
// if the node's type has a corresponding formatter function inside the
// type-to-formatter map.
func (n *SpanNode) Markup() string {
	formatter, ok := typeToFormatter[n.Type]

	// extracting markup of the children
	inner := n.BaseNode.Markup()

	// if the node has its corresponding formatter
	// return wrapped inner markup
	if ok {
		return formatter(inner)
	}

	// return raw child markup otherwise
	return inner
}

// NewSpanNode creates a new *SpanNode of the given type starting at the byte
// offset of its opening delimiter.
func NewSpanNode(nodeType NodeType, start int) *SpanNode {
	return &SpanNode{
		BaseNode: NewBaseNode(nodeType),
		Start:    start,
	}
}

// typeToFormatter is used to map NodeTypes of the span nodes (BOLD, ITALIC, HEADER)
// to helper markup wrapping functions.
var typeToFormatter = map[NodeType]func(s string) string{
	NodeBold:   markupBold,
	NodeItalic: markupItalic,
	NodeHeader: markupHeader,
}

// markupBold returns a provided string with attached BOLD delimiters ('__') on the sides.
//
// Example: "hello" -> "__hello__".
func markupBold(s string) string {
	return DelimBold + s + DelimBold
}

// markupItalic returns a provided string with attached ITALIC delimiters ('_') on the sides.
//
// Example: "hello" -> "_hello_".
func markupItalic(s string) string {
	return DelimItalic + s + DelimItalic
}

// markupHeader returns a provided string with the HEADER delimiter ('# ') attached in front.
//
// Example: "hello" -> "# hello".
func markupHeader(s string) string {
	return DelimHeader + s
}
