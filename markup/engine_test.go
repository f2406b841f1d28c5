package markup

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewEngine_NilTagSet(t *testing.T) {
	engine, err := NewEngine(nil)
	require.Error(t, err)
	require.Nil(t, engine)
}

func TestEngine_NameAndVersion(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	require.Equal(t, "minimark", engine.Name())
	require.Equal(t, int32(1), engine.Version())
}

func TestEngine_Parse_EmptyInput(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	result, err := engine.Parse("")
	require.NoError(t, err)

	require.Equal(t, "", result.RawInput)
	require.Equal(t, 0, result.TextLength)
	require.Empty(t, result.Warnings)
	require.Equal(t, NodeRoot, result.AST.NodeType())
	require.Len(t, result.AST.Children(), 1)
	require.Equal(t, NodeParagraph, result.AST.Children()[0].NodeType())
}

func TestEngine_Parse_ParagraphPerLine(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	result, err := engine.Parse("a\nb\nc")
	require.NoError(t, err)

	root := result.AST
	require.Len(t, root.Children(), 3)

	for i, want := range []string{"a", "b", "c"} {
		par := root.Children()[i]
		require.Equal(t, NodeParagraph, par.NodeType())
		require.Equal(t, want, par.DisplayText())
	}
}

func TestEngine_Parse_TrailingNewlineKeepsEmptyParagraph(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	result, err := engine.Parse("a\n")
	require.NoError(t, err)
	require.Len(t, result.AST.Children(), 2)
	require.Equal(t, "a\n", result.AST.DisplayText())
}

func TestEngine_Parse_RawInputPreserved(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	input := "# title\n__a _b_ c__"

	result, err := engine.Parse(input)
	require.NoError(t, err)
	require.Equal(t, input, result.RawInput)
	require.Empty(t, result.Warnings)
}

func TestEngine_Parse_TextLengthCountsRunes(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	// cyrillic content: 6 visible runes, more bytes
	result, err := engine.Parse("_привет_")
	require.NoError(t, err)
	require.Equal(t, 6, result.TextLength)
}

func TestEngine_Render_MissingMappingFails(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	out, err := engine.Render("__word__", htmlMap{NodeItalic: "em"})
	require.Error(t, err)
	require.Equal(t, "", out)
}

func TestEngine_ConcurrentRenders(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	inputs := []string{
		"plain text",
		"__a _b_ c__",
		"# title _t_",
		"__unclosed",
		"a\nb\nc",
	}

	var wg sync.WaitGroup

	errs := make(chan error, 32)

	for i := 0; i < 32; i++ {
		input := inputs[i%len(inputs)]

		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < 50; j++ {
				if _, err := engine.Render(input, testRenderer()); err != nil {
					errs <- err
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestEngine_LargeInput(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	unit := "__word _word_ word__ plain "
	input := strings.Repeat(unit, 5_000)

	result, err := engine.Parse(input)
	require.NoError(t, err)
	require.Empty(t, result.Warnings)

	out, err := RenderTree(result.AST, testRenderer())
	require.NoError(t, err)
	require.Equal(t,
		strings.Repeat("<strong>word <em>word</em> word</strong> plain ", 5_000),
		out)
}

func TestEngine_LargeAdversarialInput(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	// every delimiter here is either squeezed, unclosed or word-scoped
	// out, so the whole thing degrades back to the input string
	adversarial := []string{
		strings.Repeat("_", 50_000),
		strings.Repeat("1_2", 20_000),
		strings.Repeat("a_b c", 20_000),
		strings.Repeat("_a ", 20_000),
	}

	for _, input := range adversarial {
		out, err := engine.Render(input, testRenderer())
		require.NoError(t, err)
		require.Equal(t, input, out)
	}
}

// measureParse returns the best of three timed parses of input.
func measureParse(t *testing.T, engine *Engine, input string) time.Duration {
	t.Helper()

	best := time.Duration(math.MaxInt64)

	for i := 0; i < 3; i++ {
		started := time.Now()

		_, err := engine.Parse(input)
		require.NoError(t, err)

		if d := time.Since(started); d < best {
			best = d
		}
	}

	return best
}

func TestEngine_ParseTimeGrowsLinearly(t *testing.T) {
	engine, err := NewEngine(DefaultTagSet())
	require.NoError(t, err)

	cases := []struct {
		name string
		gen  func(n int) string
	}{
		{"nested spans", func(n int) string {
			return strings.Repeat("__word _word_ word__ 1_2 x_y z ", n)
		}},
		{"delimiter storm", func(n int) string {
			return strings.Repeat("_", 32*n)
		}},
	}

	for _, tc := range cases {
		// warm-up
		_, err := engine.Parse(tc.gen(500))
		require.NoError(t, err)

		small := measureParse(t, engine, tc.gen(4_000))
		big := measureParse(t, engine, tc.gen(32_000))

		// 8x the input must cost nowhere near the 64x of quadratic
		// growth; the bound is loose to stay stable on busy machines
		limit := 24*small + 20*time.Millisecond
		require.Less(t, big, limit, "%s: parsing 8x the input took %v, over the limit %v from %v", tc.name, big, limit, small)
	}
}

func BenchmarkRender_Nested(b *testing.B) {
	engine, _ := NewEngine(DefaultTagSet())
	input := strings.Repeat("__word _word_ word__ plain ", 1_000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Render(input, testRenderer()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender_DelimiterStorm(b *testing.B) {
	engine, _ := NewEngine(DefaultTagSet())
	input := strings.Repeat("_", 10_000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Render(input, testRenderer()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender_IntrawordStorm(b *testing.B) {
	engine, _ := NewEngine(DefaultTagSet())
	input := strings.Repeat("a_", 10_000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Render(input, testRenderer()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_PlainText(b *testing.B) {
	engine, _ := NewEngine(DefaultTagSet())
	input := strings.Repeat("plain words without any markup here ", 2_000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
