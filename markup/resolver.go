package markup

import (
	"strconv"
	"strings"
)

// resolver carries everything needed to resolve a single paragraph.
//
// start and end are the byte offsets of the paragraph inside input; every
// adjacency check is bounded by them, so a character "absent" at a paragraph
// edge never leaks in from a neighboring paragraph.
type resolver struct {
	input  string
	start  int
	end    int
	tokens []Token
	ts     *TagSet
	base   container
	state  *resolverState
	warns  *[]Warning

	// cachedWordEnd memoizes the end of the word most recently scanned by
	// wordEndAt, so several intraword openings inside one word cost one
	// scan of it in total.
	cachedWordEnd int
}

// resolveParagraph turns one paragraph's token window into a paragraph-level
// node: a HEADER span when the paragraph starts with a line tag, a PARAGRAPH
// container otherwise.
//
// Delimiter candidates are resolved in a single pass over the token window
// using a stack of open spans; any candidate that violates the digit,
// whitespace, word-scope or nesting rules degrades to literal text.
func resolveParagraph(input string, start, end int, tokens []Token, ts *TagSet, warns *[]Warning) Node {
	r := &resolver{
		input:  input,
		start:  start,
		end:    end,
		tokens: tokens,
		ts:     ts,
		warns:  warns,
	}

	k := 0
	r.base = NewBaseNode(NodeParagraph)

	// a line tag at the very start of the paragraph wraps the whole of it;
	// its content is resolved below with the line span as the root
	if len(tokens) > 0 && tokens[0].Type == TypeDelimiter {
		if tag := ts.tags[tokens[0].TagIdx]; tag.Line && tokens[0].Pos == start {
			h := NewSpanNode(tag.Type, start)
			h.End = end
			h.Closed = true
			r.base = h
			k = 1
		}
	}

	r.state = newResolverState(r.base)

	for ; k < len(tokens); k++ {
		tok := tokens[k]

		switch tok.Type {
		case TypeText, TypeEscape:
			r.state.appendText(tok.Val)

		case TypeDelimiter:
			r.delimiter(k)
		}
	}

	r.unwind()

	return r.base
}

// delimiter decides what a single delimiter candidate is: a closer for the
// innermost open span, an opener for a new span, or plain text.
func (r *resolver) delimiter(k int) {
	tok := r.tokens[k]
	tag := r.ts.tags[tok.TagIdx]

	// line tags are only meaningful at the paragraph start, which is
	// handled before the main loop; anywhere else they are literal text
	if tag.Line {
		r.state.appendText(tok.Val)
		return
	}

	// digits on both immediate sides keep the delimiter literal,
	// so emphasis never fires inside numeric-looking runs like "1_2_"
	if r.squeezedByDigits(tok) {
		r.state.appendText(tok.Val)
		return
	}

	// a closing delimiter of the innermost open span's type is a closing
	// candidate first
	if op, ok := r.state.peekOpen(); ok {
		opTag := r.ts.tags[op.tag]
		if opTag.Type == tag.Type && tok.Val == opTag.Close {
			if r.canClose(op, tok) {
				r.close(op, tok)
				return
			}
		}
	}

	if r.tryOpen(k, tok, tag) {
		return
	}

	r.state.appendText(tok.Val)
}

// squeezedByDigits reports whether the characters immediately before and
// after the delimiter are both decimal digits.
func (r *resolver) squeezedByDigits(tok Token) bool {
	prev, okPrev := r.byteAt(tok.Pos - 1)
	next, okNext := r.byteAt(tok.Pos + tok.Len)

	return okPrev && okNext && isDigit(prev) && isDigit(next)
}

// tryOpen opens a new span at the candidate if the nesting-capability table
// permits it here and the character following the delimiter exists and is
// not whitespace. It reports whether the span was opened.
func (r *resolver) tryOpen(k int, tok Token, tag Tag) bool {
	if tok.Val != tag.Open {
		return false
	}

	if !r.ts.allows(r.parentType(), tag) {
		return false
	}

	next, ok := r.byteAt(tok.Pos + tok.Len)
	if !ok || isSpace(next) {
		return false
	}

	op := &openSpan{
		tag:      tok.TagIdx,
		node:     NewSpanNode(tag.Type, tok.Pos),
		tokenIdx: k,
		pos:      tok.Pos,
		end:      tok.Pos + tok.Len,
		scanned:  tok.Pos + tok.Len,
	}

	// an opening immediately preceded by a non-whitespace character starts
	// inside a word; its closer must show up before the word ends
	if prev, ok := r.byteAt(tok.Pos - 1); ok && !isSpace(prev) {
		op.intraword = true
		op.wordEnd = r.wordEndAt(tok.Pos)
	}

	r.state.open(op)

	return true
}

// canClose checks the closing validity rules for the candidate against the
// innermost open span.
func (r *resolver) canClose(op *openSpan, tok Token) bool {
	// a closer must touch the span content on its left
	prev, ok := r.byteAt(tok.Pos - 1)
	if !ok || isSpace(prev) {
		return false
	}

	// a span whose content is nothing but its own delimiter character
	// carries no content: "____" and "______" never form spans
	if !r.spanContent(op, tok.Pos) {
		return false
	}

	// an intraword opening must be closed inside the same word
	if op.intraword && tok.Pos >= op.wordEnd {
		return false
	}

	return true
}

// spanContent reports whether the open span contains at least one byte that
// is not part of its own delimiters, up to the closing candidate at until.
// Escape sequences count through their backslash byte. The scan resumes
// where the previous candidate left off.
func (r *resolver) spanContent(op *openSpan, until int) bool {
	if op.content {
		return true
	}

	tag := r.ts.tags[op.tag]

	for ; op.scanned < until; op.scanned++ {
		b := r.input[op.scanned]
		if strings.IndexByte(tag.Open, b) < 0 && strings.IndexByte(tag.Close, b) < 0 {
			op.content = true
			return true
		}
	}

	return false
}

// close finalizes the innermost open span at the closing delimiter.
func (r *resolver) close(op *openSpan, tok Token) {
	op.node.End = tok.Pos + tok.Len
	op.node.Closed = true
	r.state.closeTop()
}

// parentType returns the type which decides nesting capability at the
// current position: the innermost open span, or the paragraph-level base.
func (r *resolver) parentType() NodeType {
	if op, ok := r.state.peekOpen(); ok {
		return r.ts.tags[op.tag].Type
	}

	return r.base.NodeType()
}

// unwind handles the paragraph end. If any span is still open, the outermost
// one takes the whole tail down with it: its node is detached and everything
// from its opening delimiter to the paragraph end is re-emitted as literal
// text, with escapes kept resolved.
func (r *resolver) unwind() {
	op, ok := r.state.bottomOpen()
	if !ok {
		r.state.flushText()
		return
	}

	tag := r.ts.tags[op.tag]

	r.state.unwindOpens()

	// the span node is the last child of its parent: everything scanned
	// after it went inside it
	r.state.crumb().truncateChildren(1)

	r.state.appendText(r.replay(op.tokenIdx))
	r.state.flushText()

	*r.warns = append(*r.warns, Warning{
		Node:  tag.Type,
		Index: op.pos,
		Near:  tag.Open,
		Issue: IssueUnclosedTag,
		Description: "Unclosed " + string(tag.Type) + " span starting at byte index " +
			strconv.Itoa(op.pos) + ". Its delimiter is kept as plain text.",
	})
}

// replay re-emits the token window from idx onward as literal text:
// delimiters keep their raw form, escape sequences stay resolved.
func (r *resolver) replay(idx int) string {
	var b strings.Builder

	for _, tok := range r.tokens[idx:] {
		b.WriteString(tok.Val)
	}

	return b.String()
}

// byteAt returns the input byte at pos if pos lies inside the paragraph.
func (r *resolver) byteAt(pos int) (byte, bool) {
	if pos < r.start || pos >= r.end {
		return 0, false
	}

	return r.input[pos], true
}

// wordEndAt returns the byte offset of the first whitespace character at or
// after from, or the paragraph end. Words partition the paragraph, so with
// the memoized result each word is scanned at most once.
func (r *resolver) wordEndAt(from int) int {
	if r.cachedWordEnd > from {
		return r.cachedWordEnd
	}

	i := from
	for i < r.end && !isSpace(r.input[i]) {
		i++
	}

	r.cachedWordEnd = i

	return i
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
