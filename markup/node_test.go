package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextNode_Basics(t *testing.T) {
	n := NewTextNode("привет")

	require.Equal(t, NodeText, n.NodeType())
	require.Nil(t, n.Children())
	require.Equal(t, "привет", n.DisplayText())
	require.Equal(t, "привет", n.Markup())

	// rune count, not byte count
	require.Equal(t, 6, n.TextLength())
}

func TestTextNode_AppendIsIgnored(t *testing.T) {
	n := NewTextNode("a")
	n.Append(NewTextNode("b"))

	require.Nil(t, n.Children())
	require.Equal(t, "a", n.DisplayText())
}

func TestBaseNode_AppendAndDisplayText(t *testing.T) {
	n := NewBaseNode(NodeParagraph)
	n.Append(NewTextNode("hello "))
	n.Append(NewTextNode("world"))

	require.Len(t, n.Children(), 2)
	require.Equal(t, "hello world", n.DisplayText())
	require.Equal(t, 11, n.TextLength())
}

func TestBaseNode_RootJoinsParagraphsWithNewline(t *testing.T) {
	root := NewBaseNode(NodeRoot)

	p1 := NewBaseNode(NodeParagraph)
	p1.Append(NewTextNode("one"))

	p2 := NewBaseNode(NodeParagraph)
	p2.Append(NewTextNode("two"))

	root.Append(p1)
	root.Append(p2)

	require.Equal(t, "one\ntwo", root.DisplayText())
	require.Equal(t, "one\ntwo", root.Markup())
}

func TestSpanNode_Markup(t *testing.T) {
	bold := NewSpanNode(NodeBold, 0)
	bold.Append(NewTextNode("hi"))
	require.Equal(t, "__hi__", bold.Markup())

	italic := NewSpanNode(NodeItalic, 0)
	italic.Append(NewTextNode("hi"))
	require.Equal(t, "_hi_", italic.Markup())

	header := NewSpanNode(NodeHeader, 0)
	header.Append(NewTextNode("hi"))
	require.Equal(t, "# hi", header.Markup())
}

func TestSpanNode_NestedMarkup(t *testing.T) {
	bold := NewSpanNode(NodeBold, 0)
	bold.Append(NewTextNode("a "))

	italic := NewSpanNode(NodeItalic, 4)
	italic.Append(NewTextNode("b"))
	bold.Append(italic)

	require.Equal(t, "__a _b___", bold.Markup())
	require.Equal(t, "a b", bold.DisplayText())
	require.Equal(t, 3, bold.TextLength())
}

func TestBaseNode_TruncateChildren(t *testing.T) {
	n := NewBaseNode(NodeParagraph)
	n.Append(NewTextNode("a"))
	n.Append(NewTextNode("b"))

	n.truncateChildren(1)
	require.Len(t, n.Children(), 1)
	require.Equal(t, "a", n.DisplayText())

	n.truncateChildren(5)
	require.Empty(t, n.Children())
}
