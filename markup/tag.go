package markup

import (
	"fmt"
	"sort"
	"strings"
)

// Delimiter strings of the default dialect.
const (
	DelimBold   = "__"
	DelimItalic = "_"
	DelimHeader = "# "
	DelimEscape = "\\"
)

// Tag is an immutable description of one recognizable span type: its
// delimiter strings and the node type the resolved span produces.
//
// WARNING: delimiters work exclusively with printable ASCII characters.
type Tag struct {
	// Open is the opening delimiter string, e.g. "__" for BOLD.
	Open string

	// Close is the closing delimiter string. Line tags leave it empty:
	// they close at the paragraph end.
	Close string

	// Type is the node type a resolved span of this tag produces.
	Type NodeType

	// Line marks a tag recognized only at the very start of a paragraph
	// and spanning the whole of it, e.g. the "# " header. Anywhere else
	// its delimiter is plain text.
	Line bool
}

// matcher binds one delimiter string to the tag it belongs to.
type matcher struct {
	lit string
	tag int // index into TagSet.tags
}

// TagSet holds an ordered, validated tag configuration together with the
// nesting-capability table and the lookup structures used for matching.
//
// A TagSet is immutable after creation and safe to share between
// concurrent renders.
type TagSet struct {
	tags []Tag

	// matchers lists every delimiter string sorted by length in descending
	// order, so that "__" wins over "_" at the same position.
	matchers []matcher

	// nesting maps a span type to the set of types allowed to nest inside it.
	nesting map[NodeType]map[NodeType]bool

	// special marks bytes which can start a delimiter and therefore can
	// be escaped.
	special [256]bool
}

// NewTagSet validates the given tag definitions and builds a TagSet.
// Malformed definitions fail here, at configuration time, not at render time.
func NewTagSet(tags []Tag, nesting map[NodeType][]NodeType) (*TagSet, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("markup: no tags provided")
	}

	ts := &TagSet{tags: make([]Tag, len(tags))}
	copy(ts.tags, tags)

	seen := map[string]bool{}

	for i, tag := range ts.tags {
		if tag.Type == "" {
			return nil, fmt.Errorf("markup: tag %d has no type", i)
		}

		if err := checkDelimiter(tag.Open); err != nil {
			return nil, fmt.Errorf("markup: tag %q opening delimiter: %w", tag.Type, err)
		}

		if tag.Line {
			if tag.Close != "" {
				return nil, fmt.Errorf("markup: line tag %q must not have a closing delimiter", tag.Type)
			}
		} else if err := checkDelimiter(tag.Close); err != nil {
			return nil, fmt.Errorf("markup: tag %q closing delimiter: %w", tag.Type, err)
		}

		if seen[tag.Open] {
			return nil, fmt.Errorf("markup: duplicate delimiter %q", tag.Open)
		}
		seen[tag.Open] = true

		ts.matchers = append(ts.matchers, matcher{lit: tag.Open, tag: i})

		if tag.Close != "" && tag.Close != tag.Open {
			if seen[tag.Close] {
				return nil, fmt.Errorf("markup: duplicate delimiter %q", tag.Close)
			}
			seen[tag.Close] = true

			ts.matchers = append(ts.matchers, matcher{lit: tag.Close, tag: i})
		}
	}

	// longest delimiter first, configuration order breaks ties
	sort.SliceStable(ts.matchers, func(a, b int) bool {
		return len(ts.matchers[a].lit) > len(ts.matchers[b].lit)
	})

	for _, m := range ts.matchers {
		ts.special[m.lit[0]] = true
	}
	ts.special[DelimEscape[0]] = true

	ts.nesting = make(map[NodeType]map[NodeType]bool, len(nesting))
	for parent, kids := range nesting {
		set := make(map[NodeType]bool, len(kids))
		for _, k := range kids {
			set[k] = true
		}
		ts.nesting[parent] = set
	}

	return ts, nil
}

// checkDelimiter ensures the delimiter is a non-empty printable ASCII string.
func checkDelimiter(delim string) error {
	if delim == "" {
		return fmt.Errorf("empty delimiter")
	}

	for i := 0; i < len(delim); i++ {
		if delim[i] < 0x20 || delim[i] >= 0x7f {
			return fmt.Errorf("delimiter %q contains a non-printable or non-ASCII byte", delim)
		}
	}

	if delim[0] == DelimEscape[0] {
		return fmt.Errorf("delimiter %q starts with the escape character", delim)
	}

	return nil
}

// match reports the tag whose delimiter starts at input[i:], trying longer
// delimiters first so that "__" wins over "_" at the same position.
func (ts *TagSet) match(input string, i int) (tagIdx, length int, ok bool) {
	for _, m := range ts.matchers {
		if strings.HasPrefix(input[i:], m.lit) {
			return m.tag, len(m.lit), true
		}
	}

	return 0, 0, false
}

// allows reports whether a span of the given tag may open while parent is
// the innermost active container. The paragraph root accepts every
// non-line tag; everything else is decided by the nesting-capability table.
func (ts *TagSet) allows(parent NodeType, tag Tag) bool {
	if tag.Line {
		return false
	}

	if parent == NodeParagraph {
		return true
	}

	return ts.nesting[parent][tag.Type]
}

// DefaultTagSet returns the standard dialect: "__" bold, "_" italic and the
// "# " level-1 header. Italic may nest inside bold, bold may not nest inside
// italic, the header accepts both.
func DefaultTagSet() *TagSet {
	ts, err := NewTagSet(
		[]Tag{
			{Open: DelimBold, Close: DelimBold, Type: NodeBold},
			{Open: DelimItalic, Close: DelimItalic, Type: NodeItalic},
			{Open: DelimHeader, Type: NodeHeader, Line: true},
		},
		map[NodeType][]NodeType{
			NodeBold:   {NodeItalic},
			NodeItalic: {},
			NodeHeader: {NodeBold, NodeItalic},
		},
	)
	if err != nil {
		// the default configuration is known to be valid
		panic(err)
	}

	return ts
}
