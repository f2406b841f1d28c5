package markup

import "strings"

// container is implemented by tree nodes that carry children and can drop
// the latest of them, which happens when an unclosed span degrades back to
// literal text.
type container interface {
	Node
	truncateChildren(count int)
}

// openSpan records a span whose opening delimiter was accepted but whose
// closing delimiter has not been seen yet.
type openSpan struct {
	// tag is the index of the span's Tag inside the TagSet.
	tag int

	// node is the span node already attached to the tree. It is detached
	// again if the span never closes.
	node *SpanNode

	// tokenIdx is the index of the opening delimiter inside the
	// paragraph's token window, used to replay the tail as literal text
	// on fallback.
	tokenIdx int

	// pos is the byte offset of the opening delimiter, end the byte offset
	// just past it.
	pos int
	end int

	// scanned and content implement the empty-content rule lazily:
	// content becomes true once a byte between the opening delimiter and
	// a closing candidate is not one of the span's own delimiter
	// characters, scanned is the next byte offset to examine. Each byte
	// is examined at most once per span, so delimiter storms like
	// "______..." still resolve in linear time.
	scanned int
	content bool

	// intraword is true when the opening delimiter starts inside a word,
	// that is, it is immediately preceded by a non-whitespace character.
	intraword bool

	// wordEnd is the byte offset of the current word's end. Only
	// meaningful for intraword openings: their closer must occur before it.
	wordEnd int
}

// resolverState holds the mutable resolver position inside a single
// paragraph.
type resolverState struct {

	// crumbs contains the chain of container nodes of the current branch,
	// with possibility of backtracking.
	crumbs stack[container]

	// opens defines the chain of open spans, checked to match closing
	// delimiters against their openers.
	opens stack[*openSpan]

	// pending buffers literal text for the current container. It is
	// flushed into a single TextNode whenever the branch changes.
	pending strings.Builder
}

func newResolverState(base container) *resolverState {
	s := &resolverState{}
	s.crumbs.push(base)
	return s
}

// crumb returns the current container, that is, the node new children are
// appended to.
func (s *resolverState) crumb() container {
	c, _ := s.crumbs.peek()
	return c
}

// appendText buffers literal text for the current container.
func (s *resolverState) appendText(text string) {
	s.pending.WriteString(text)
}

// flushText materializes the buffered text as a TextNode under the current
// container, merging into a preceding TextNode sibling if there is one.
func (s *resolverState) flushText() {
	if s.pending.Len() == 0 {
		return
	}

	parent := s.crumb()
	children := parent.Children()

	if n := len(children); n > 0 {
		if t, ok := children[n-1].(*TextNode); ok {
			t.Text += s.pending.String()
			s.pending.Reset()
			return
		}
	}

	parent.Append(NewTextNode(s.pending.String()))
	s.pending.Reset()
}

// open attaches the span node to the tree and makes it the current container.
func (s *resolverState) open(op *openSpan) {
	s.flushText()
	s.crumb().Append(op.node)
	s.crumbs.push(op.node)
	s.opens.push(op)
}

// closeTop closes the innermost open span and returns to its parent.
func (s *resolverState) closeTop() {
	s.flushText()
	s.crumbs.pop()
	s.opens.pop()
}

// peekOpen returns the innermost open span, if any.
func (s *resolverState) peekOpen() (*openSpan, bool) {
	return s.opens.peek()
}

// bottomOpen returns the outermost open span, if any.
func (s *resolverState) bottomOpen() (*openSpan, bool) {
	if len(s.opens.v) == 0 {
		return nil, false
	}
	return s.opens.v[0], true
}

// unwindOpens drops every open span from the branch, returning to the crumb
// the outermost open span was appended to. Buffered text is discarded: the
// caller replays the whole tail from the token window instead.
func (s *resolverState) unwindOpens() {
	s.pending.Reset()
	s.crumbs.drop(len(s.opens.v))
	s.opens.v = s.opens.v[:0]
}

type stack[T any] struct {
	v []T
}

func (s *stack[T]) push(t T) {
	s.v = append(s.v, t)
}

func (s *stack[T]) pop() {
	if len(s.v) > 0 {
		s.v = s.v[:len(s.v)-1]
	}
}

func (s *stack[T]) peek() (T, bool) {
	if len(s.v) > 0 {
		return s.v[len(s.v)-1], true
	}

	var empty T

	return empty, false
}

// drop removes the n topmost items from the stack.
func (s *stack[T]) drop(n int) {
	if n < len(s.v) {
		s.v = s.v[:len(s.v)-n]
	} else {
		s.v = s.v[:0]
	}
}
