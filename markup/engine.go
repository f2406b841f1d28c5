package markup

import (
	"errors"
	"strings"
)

// ParseResult defines the output of the Engine.Parse method. It contains:
//
//   - the original input string (RawInput)
//   - the visible text length (TextLength)
//   - a list of non-critical issues (Warnings)
//   - the parsed document tree (AST)
type ParseResult struct {
	// RawInput is the original input string passed into Parse.
	RawInput string `json:"raw_input"`

	// TextLength is the count of actual text characters (runes) that are
	// considered "visible content", excluding delimiter characters such
	// as '_', '__' and '# '.
	TextLength int `json:"text_length"`

	// Warnings is a list of non-critical issues detected during parsing.
	// Parsing still succeeded, but the input was not fully well-formed.
	Warnings []Warning `json:"warnings"`

	// AST is the document tree parsed from the input. Its root is a ROOT
	// node whose children are paragraph-level nodes in input order.
	AST Node `json:"ast"`
}

// Engine orchestrates tokenizing, span resolution and rendering for one tag
// configuration. It keeps no mutable state between calls: the same Engine
// may serve concurrent renders of different (or the same) inputs without
// coordination.
type Engine struct {
	tags *TagSet
}

// NewEngine creates an Engine over an already validated TagSet.
func NewEngine(ts *TagSet) (*Engine, error) {
	if ts == nil {
		return nil, errors.New("markup: nil tag set")
	}

	return &Engine{tags: ts}, nil
}

// Name returns the name of the markup engine implementation.
func (e *Engine) Name() string {
	return "minimark"
}

// Version returns the version of the markup engine.
func (e *Engine) Version() int32 {
	return 1
}

// Parse processes a raw input string and returns a ParseResult.
//
// Input that does not satisfy the delimiter rules is not an error: it
// degrades deterministically to literal text, with details in Warnings.
// The error return is reserved for fatal conditions and is nil for any
// input.
func (e *Engine) Parse(input string) (ParseResult, error) {
	tokens, warnings := Tokenize(input, e.tags)

	root := NewBaseNode(NodeRoot)

	parStart := 0
	winStart := 0

	// paragraph break tokens split the token stream into per-paragraph
	// windows; the trailing window ends at the end of the input
	for k := 0; k <= len(tokens); k++ {
		if k < len(tokens) && tokens[k].Type != TypeParagraphBreak {
			continue
		}

		parEnd := len(input)
		if k < len(tokens) {
			parEnd = tokens[k].Pos
		}

		par := resolveParagraph(input, parStart, parEnd, tokens[winStart:k], e.tags, &warnings)
		root.Append(par)

		if k < len(tokens) {
			parStart = tokens[k].Pos + tokens[k].Len
			winStart = k + 1
		}
	}

	return ParseResult{
		RawInput:   input,
		TextLength: root.TextLength(),
		Warnings:   warnings,
		AST:        root,
	}, nil
}

// Render parses input and renders the resulting tree with r. Rendering
// failures (a span type r has no mapping for) are surfaced synchronously,
// with no partial output.
func (e *Engine) Render(input string, r Renderer) (string, error) {
	result, err := e.Parse(input)
	if err != nil {
		return "", err
	}

	return RenderTree(result.AST, r)
}

// Render parses input with the given tag configuration and renders it with r.
// It is a convenience wrapper around a throwaway Engine.
func Render(input string, ts *TagSet, r Renderer) (string, error) {
	engine, err := NewEngine(ts)
	if err != nil {
		return "", err
	}

	return engine.Render(input, r)
}

// RenderTree renders an already parsed document tree with r. Paragraphs are
// joined with the newline characters removed during splitting; literal
// leaves pass through unchanged; span nodes are wrapped by the renderer.
func RenderTree(ast Node, r Renderer) (string, error) {
	switch ast.NodeType() {
	case NodeText:
		return ast.DisplayText(), nil

	case NodeRoot:
		var b strings.Builder

		for i, child := range ast.Children() {
			if i > 0 {
				b.WriteByte('\n')
			}

			s, err := RenderTree(child, r)
			if err != nil {
				return "", err
			}

			b.WriteString(s)
		}

		return b.String(), nil

	case NodeParagraph:
		return renderChildren(ast, r)

	default:
		inner, err := renderChildren(ast, r)
		if err != nil {
			return "", err
		}

		return r.Wrap(ast.NodeType(), inner)
	}
}

// renderChildren concatenates the rendered children of n in order.
func renderChildren(n Node, r Renderer) (string, error) {
	var b strings.Builder

	for _, child := range n.Children() {
		s, err := RenderTree(child, r)
		if err != nil {
			return "", err
		}

		b.WriteString(s)
	}

	return b.String(), nil
}
