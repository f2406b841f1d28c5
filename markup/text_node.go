package markup

import "unicode/utf8"

// TextNode is a leaf of the document tree carrying literal text.
// Escape sequences are already resolved: the backslash is removed and the
// escaped character is kept verbatim.
type TextNode struct {
	Text string `json:"text"`
}

// NodeType implements Node.NodeType method by always returning [NodeText].
func (n *TextNode) NodeType() NodeType {
	return NodeText
}

// Children implements Node.Children method. A TextNode is a leaf and has no children.
func (n *TextNode) Children() []Node {
	return nil
}

// Append implements Node.Append method. A TextNode is a leaf, so the call is ignored.
func (n *TextNode) Append(Node) {}

// DisplayText implements Node.DisplayText method by returning the raw text value.
func (n *TextNode) DisplayText() string {
	return n.Text
}

// Markup implements Node.Markup method by returning the raw text value.
func (n *TextNode) Markup() string {
	return n.Text
}

// TextLength returns the count of runes in the text, not the count of bytes.
func (n *TextNode) TextLength() int {
	return utf8.RuneCountInString(n.Text)
}

// NewTextNode creates a new *TextNode with the given text.
func NewTextNode(text string) *TextNode {
	return &TextNode{Text: text}
}
