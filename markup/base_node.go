package markup

import "strings"

// BaseNode represents a basic container element of the document tree.
//
// It has the core node logic and fields shared by every container node.
type BaseNode struct {
	Type       NodeType `json:"type"`
	ChildNodes []Node   `json:"children,omitempty"`
}

// NodeType implements Node.NodeType method by returning BaseNode's type.
func (n *BaseNode) NodeType() NodeType {
	return n.Type
}

// Children implements Node.Children method by returning BaseNode's child nodes.
func (n *BaseNode) Children() []Node {
	return n.ChildNodes
}

// Append implements Node.Append method by attaching new Node to the BaseNode's child list.
func (n *BaseNode) Append(child Node) {
	n.ChildNodes = append(n.ChildNodes, child)
}

// DisplayText implements Node.DisplayText method by concatenating
// display texts of all of the BaseNode's children. A ROOT node joins its
// paragraphs with the newline characters removed during splitting.
func (n *BaseNode) DisplayText() string {
	var b strings.Builder

	for i, c := range n.ChildNodes {
		if i > 0 && n.Type == NodeRoot {
			b.WriteByte('\n')
		}
		b.WriteString(c.DisplayText())
	}

	return b.String()
}

// Markup implements Node.Markup method by concatenating
// markup strings of all of the BaseNode's children. A ROOT node joins its
// paragraphs with newlines.
func (n *BaseNode) Markup() string {
	var b strings.Builder

	for i, c := range n.ChildNodes {
		if i > 0 && n.Type == NodeRoot {
			b.WriteByte('\n')
		}
		b.WriteString(c.Markup())
	}

	return b.String()
}

// TextLength returns combined text length of the node's children.
func (n *BaseNode) TextLength() int {
	sum := 0
	for _, c := range n.ChildNodes {
		sum += c.TextLength()
	}
	return sum
}

// truncateChildren removes the count last children from the node. Used when
// an unclosed span degrades back to literal text.
func (n *BaseNode) truncateChildren(count int) {
	if count < len(n.ChildNodes) {
		n.ChildNodes = n.ChildNodes[:len(n.ChildNodes)-count]
	} else {
		n.ChildNodes = nil
	}
}

// NewBaseNode is a factory method for creating
// a BaseNode with a given type.
func NewBaseNode(nodeType NodeType) *BaseNode {
	return &BaseNode{Type: nodeType}
}
