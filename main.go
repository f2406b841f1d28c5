package main

import (
	"io"
	"os"

	"github.com/Drolfothesgnir/minimark/markup"
	"github.com/Drolfothesgnir/minimark/render"
	"github.com/Drolfothesgnir/minimark/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// minimark reads the dialect on stdin and writes the rendered HTML to
// stdout. Non-critical parsing issues are logged to stderr as warnings.
func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input")
	}

	engine, err := markup.NewEngine(markup.DefaultTagSet())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create markup engine")
	}

	renderer := render.HTML{
		markup.NodeBold:   config.BoldTag,
		markup.NodeItalic: config.ItalicTag,
		markup.NodeHeader: config.HeaderTag,
	}

	result, err := engine.Parse(string(input))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse input")
	}

	for _, w := range result.Warnings {
		log.Warn().
			Int("index", w.Index).
			Str("near", w.Near).
			Msg(w.Description)
	}

	out, err := markup.RenderTree(result.AST, renderer)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot render input")
	}

	if _, err := os.Stdout.WriteString(out + "\n"); err != nil {
		log.Fatal().Err(err).Msg("cannot write output")
	}
}
