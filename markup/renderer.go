package markup

// Renderer maps a resolved span type and its already-rendered content to the
// final output markup. Implementations are supplied by the caller; the
// engine never hardcodes output syntax.
type Renderer interface {
	// Wrap returns inner wrapped in the output markup for the given span
	// type, e.g. "<strong>" + inner + "</strong>" for BOLD in an HTML
	// renderer. A span type the implementation has no mapping for must
	// return an error: emitting unrendered internal state would silently
	// corrupt the output.
	Wrap(t NodeType, inner string) (string, error)
}
