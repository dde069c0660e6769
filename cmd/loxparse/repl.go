package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/ltungv/lox/loxparse/internal/lox"
)

const (
	PROMPT_MAIN = "> "
	PROMPT_CONT = ". "

	REPL_SOURCE_NAME = "<repl>"
)

// prompter reads one line of input. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Run the parser in REPL mode
func runPrompt(cfg config, opts lox.ParserOptions, outW io.Writer, renderer *diagnosticRenderer, logger zerolog.Logger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.history != "" {
		if f, err := os.Open(cfg.history); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				logger.Warn().Err(err).Str("file", cfg.history).Msg("cannot read history")
			}
			f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.history)
			if err != nil {
				logger.Warn().Err(err).Str("file", cfg.history).Msg("cannot write history")
				return
			}
			defer f.Close()
			if _, err := ln.WriteHistory(f); err != nil {
				logger.Warn().Err(err).Str("file", cfg.history).Msg("cannot write history")
			}
		}()
	}

	return repl(ln, cfg, opts, outW, renderer)
}

// repl parses one chunk of input at a time until the input ends or ":quit"
// is entered. Invalid chunks are reported and skipped.
func repl(p prompter, cfg config, opts lox.ParserOptions, outW io.Writer, renderer *diagnosticRenderer) int {
	for {
		code, ok := readChunk(p)
		if !ok {
			fmt.Fprintln(outW)
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Fprintln(outW, "unknown command. Type :quit to exit.")
			}
			continue
		}
		p.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		program, err := lox.Parse(code, opts)
		if err != nil {
			renderer.renderError(REPL_SOURCE_NAME, code, err)
			continue
		}
		if err := writeProgram(outW, program, cfg.format); err != nil {
			renderer.renderError(REPL_SOURCE_NAME, code, err)
		}
	}
}

// readChunk keeps reading lines while the text read so far only fails
// because it ends too early. It returns false once the input is exhausted.
func readChunk(p prompter) (string, bool) {
	var b strings.Builder

	for {
		prompt := PROMPT_MAIN
		if b.Len() > 0 {
			prompt = PROMPT_CONT
		}
		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the pending chunk
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		var perr *lox.ParseError
		if _, err := lox.Parse(src); errors.As(err, &perr) && perr.Incomplete() {
			continue
		}
		return src, true
	}
}
