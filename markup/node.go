package markup

// NodeType identifies the kind of node in the document tree,
// e.g. "TEXT", "BOLD", "HEADER".
type NodeType string

const (
	// NodeRoot represents the root of the document tree. Its children are
	// paragraph-level nodes in input order.
	NodeRoot NodeType = "ROOT"

	// NodeParagraph represents a single newline-delimited paragraph.
	NodeParagraph NodeType = "PARAGRAPH"

	NodeHeader NodeType = "HEADER"
	NodeBold   NodeType = "BOLD"
	NodeItalic NodeType = "ITALIC"
	NodeText   NodeType = "TEXT"
)

// Node represents a part of the document tree. Some nodes are leaf nodes
// (TEXT), and some are containers that carry child nodes (BOLD, ITALIC,
// HEADER, PARAGRAPH).
type Node interface {
	// NodeType returns the node's type, e.g. "BOLD", "ITALIC", "TEXT".
	NodeType() NodeType

	// Children returns this node's child nodes. Leaf nodes return nil.
	Children() []Node

	// Append adds a new child node to this node.
	// Container nodes implement this; leaf nodes ignore the call.
	Append(child Node)

	// DisplayText returns the "visible" text value of the node.
	//
	// For span nodes like BOLD and HEADER it returns the combined
	// DisplayText of their children, that is, what the user sees
	// without the delimiters.
	DisplayText() string

	// Markup returns a canonical serialization of this node in the source
	// dialect.
	//
	// For example:
	//   - BOLD node with child TEXT("hi") → "__hi__"
	//   - ITALIC node with child TEXT("hi") → "_hi_"
	//   - HEADER node → "# hi"
	//   - TEXT node → its raw text value.
	Markup() string

	// TextLength returns the actual length of the visible text content,
	// that is, the count of runes in the plain text, not the count of
	// bytes in the raw content string.
	TextLength() int
}
