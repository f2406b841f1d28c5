// Package render contains output-format renderers for the markup engine.
// The engine itself never hardcodes output syntax: a renderer receives a
// span type together with its already-rendered content and wraps it.
package render

import (
	"errors"
	"fmt"

	"github.com/Drolfothesgnir/minimark/markup"
)

// ErrNoTagName is returned when the document tree contains a span type the
// mapping has no tag name for.
var ErrNoTagName = errors.New("render: no tag name for span type")

// HTML renders spans as HTML elements, keyed by span type. The map value is
// the element name, e.g. "strong" for BOLD.
type HTML map[markup.NodeType]string

// Wrap implements markup.Renderer by wrapping inner in the mapped element.
func (h HTML) Wrap(t markup.NodeType, inner string) (string, error) {
	name, ok := h[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoTagName, t)
	}

	return "<" + name + ">" + inner + "</" + name + ">", nil
}

// Default returns the standard mapping: BOLD→strong, ITALIC→em, HEADER→h1.
func Default() HTML {
	return HTML{
		markup.NodeBold:   "strong",
		markup.NodeItalic: "em",
		markup.NodeHeader: "h1",
	}
}
