package markup

// Type defines the kind of token, e.g. delimiter candidate, escape, text.
type Type int

const (
	TypeText Type = iota
	TypeEscape
	TypeDelimiter
	TypeParagraphBreak
)

// Token represents a single scan event of the input.
type Token struct {
	Type Type // Token type: text run, escape sequence, delimiter candidate, paragraph break.
	Pos  int  // Starting byte position of the token in the original input string.

	// Len is the length of the token's source byte sequence.
	//
	// WARNING: This is not the visible text length.
	//
	// It is the byte length of the consumed source as used internally by
	// the tokenizer. For escape sequences it counts the backslash too.
	// Do not use this field for visible text length calculations; use rune
	// counting instead.
	Len int

	// Val is the token's literal value:
	// - for delimiters: the matched delimiter string ("__", "_", "# "),
	// - for escapes: the escaped character with the backslash removed,
	// - for text: the raw text content.
	Val string

	// TagIdx is the index of the matched Tag inside the TagSet for
	// [TypeDelimiter] tokens, and -1 for everything else. Whether the
	// delimiter opens or closes a span is unknown at this stage; the
	// resolver decides.
	TagIdx int
}

// Tokenize transforms a raw input string into a flat sequence of tokens:
// text runs, escape sequences, delimiter candidates and paragraph breaks.
// It is a single left-to-right pass with no backtracking; delimiter matching
// is greedy, longest delimiter first.
func Tokenize(input string, ts *TagSet) (tokens []Token, warnings []Warning) {

	// current byte position in the input string
	var p int

	n := len(input)

	for p < n {
		c := input[p]

		// 1) paragraph boundary
		if c == '\n' {
			tokens = append(tokens, Token{
				Type:   TypeParagraphBreak,
				Pos:    p,
				Len:    1,
				Val:    "\n",
				TagIdx: -1,
			})
			p++
			continue
		}

		// 2) escape sequence
		if c == DelimEscape[0] {
			token, stride := actEscape(input, p, ts, &warnings)
			tokens = append(tokens, token)
			p += stride
			continue
		}

		// 3) delimiter candidates, longest delimiter first
		if ts.special[c] {
			if tagIdx, l, ok := ts.match(input, p); ok {
				tokens = append(tokens, Token{
					Type:   TypeDelimiter,
					Pos:    p,
					Len:    l,
					Val:    input[p : p+l],
					TagIdx: tagIdx,
				})
				p += l
				continue
			}

			// a special byte that forms no delimiter here,
			// e.g. '#' not followed by a space
			tokens = append(tokens, Token{
				Type:   TypeText,
				Pos:    p,
				Len:    1,
				Val:    input[p : p+1],
				TagIdx: -1,
			})
			p++
			continue
		}

		// 4) otherwise it's text: consume as much as possible until the
		// next special byte or paragraph break
		start := p
		for p < n && input[p] != '\n' && !ts.special[input[p]] {
			p++
		}

		tokens = append(tokens, Token{
			Type:   TypeText,
			Pos:    start,
			Len:    p - start,
			Val:    input[start:p],
			TagIdx: -1,
		})
	}

	return
}
