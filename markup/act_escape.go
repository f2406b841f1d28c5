package markup

import (
	"strconv"
	"unicode/utf8"
)

// actEscape interprets a backslash at byte index i.
//
// Behaviour:
//
// A backslash followed by a special character (any byte that can start a
// delimiter, or another backslash) consumes both characters and produces a
// [TypeEscape] token whose value is the escaped character alone.
//
// A backslash followed by a plain character is NOT an escape: only the
// backslash is consumed, as a 1-byte [TypeText] token, and a [Warning] with
// [IssueRedundantEscape] is added. The following character stays in the
// input for the main loop, so the output keeps both characters verbatim.
//
// A backslash at the very end of the input is kept as plain text and adds
// a [Warning] with [IssueUnexpectedEOL].
func actEscape(input string, i int, ts *TagSet, warns *[]Warning) (token Token, stride int) {

	// 1. Checking the last symbol case

	// if the escape symbol is the last in the input
	// return it as plain text and add a Warning
	if i+1 == len(input) {
		token = Token{
			Type:   TypeText,
			Pos:    i,
			Len:    1,
			Val:    input[i:],
			TagIdx: -1,
		}

		*warns = append(*warns, Warning{
			Node:        NodeText,
			Index:       i,
			Issue:       IssueUnexpectedEOL,
			Description: "Escape '" + DelimEscape + "' at the very end of the input. It is kept as plain text.",
		})

		// signaling the main loop that we have processed only 1 byte
		stride = 1

		return
	}

	next := input[i+1]

	// 2. Checking if the next byte is a plain character

	// a backslash only escapes delimiter characters and itself;
	// anything else keeps both characters literal
	if next != DelimEscape[0] && !ts.special[next] {
		width := 1

		// if the next byte is not simple ASCII, decode the whole rune
		// for the Near snippet
		if next >= 128 {
			_, width = utf8.DecodeRuneInString(input[i+1:])
		}

		near := input[i : i+1+width]

		token = Token{
			Type:   TypeText,
			Pos:    i,
			Len:    1,
			Val:    input[i : i+1],
			TagIdx: -1,
		}

		*warns = append(*warns, Warning{
			Node:  NodeText,
			Index: i,
			Near:  near,
			Issue: IssueRedundantEscape,
			Description: "Escape '" + DelimEscape + "' before the plain character " +
				strconv.Quote(input[i+1:i+1+width]) + " at byte index " + strconv.Itoa(i) +
				". Both characters are kept verbatim.",
		})

		stride = 1

		return
	}

	// 3. Creating the escape sequence: the backslash is consumed, the
	// escaped character is kept verbatim

	token = Token{
		Type:   TypeEscape,
		Pos:    i,
		Len:    2,
		Val:    input[i+1 : i+2],
		TagIdx: -1,
	}

	stride = 2

	return
}
