package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"

	"github.com/ltungv/lox/loxparse/internal/lox"
)

type promptResult struct {
	line string
	err  error
}

type fakePrompter struct {
	results []promptResult
	prompts []string
	history []string
}

func newFakePrompter(lines ...string) *fakePrompter {
	p := &fakePrompter{}
	for _, line := range lines {
		p.results = append(p.results, promptResult{line: line})
	}
	return p
}

func (p *fakePrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.results) == 0 {
		return "", io.EOF
	}
	res := p.results[0]
	p.results = p.results[1:]
	return res.line, res.err
}

func (p *fakePrompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

func TestReadChunkContinuesIncompleteInput(t *testing.T) {
	p := newFakePrompter("var x =", "1 +", "2;", "print x;")

	chunk, ok := readChunk(p)
	assert.True(t, ok)
	assert.Equal(t, "var x =\n1 +\n2;", chunk)
	assert.Equal(t, []string{PROMPT_MAIN, PROMPT_CONT, PROMPT_CONT}, p.prompts)

	chunk, ok = readChunk(p)
	assert.True(t, ok)
	assert.Equal(t, "print x;", chunk)
}

func TestReadChunkContinuesOpenString(t *testing.T) {
	p := newFakePrompter("print \"abc", "def\";")

	chunk, ok := readChunk(p)
	assert.True(t, ok)
	assert.Equal(t, "print \"abc\ndef\";", chunk)
	assert.Equal(t, []string{PROMPT_MAIN, PROMPT_CONT}, p.prompts)
}

func TestReadChunkStopsOnOtherErrors(t *testing.T) {
	p := newFakePrompter("var = 1", "print 2;")

	chunk, ok := readChunk(p)
	assert.True(t, ok)
	assert.Equal(t, "var = 1", chunk)
	assert.Equal(t, []string{PROMPT_MAIN}, p.prompts)
}

func TestReadChunkEndOfInput(t *testing.T) {
	p := newFakePrompter("print 1")

	chunk, ok := readChunk(p)
	assert.True(t, ok)
	assert.Equal(t, "print 1", chunk)

	_, ok = readChunk(p)
	assert.False(t, ok)
}

func TestReadChunkAborted(t *testing.T) {
	p := newFakePrompter()
	p.results = []promptResult{
		{line: "print"},
		{err: liner.ErrPromptAborted},
		{line: "print 3;"},
	}

	chunk, ok := readChunk(p)
	assert.True(t, ok)
	assert.Equal(t, "print 3;", chunk)
	assert.Equal(t, []string{PROMPT_MAIN, PROMPT_CONT, PROMPT_MAIN}, p.prompts)
}

func TestRepl(t *testing.T) {
	p := newFakePrompter("print 1;", "", "var = ;", ":help", "var a =", "2;", ":quit", "print 4;")

	var out, errOut bytes.Buffer
	status := repl(p, config{noColor: true}, lox.ParserOptions{}, &out, newRenderer(&errOut, config{noColor: true}))

	assert.Equal(t, 0, status)
	assert.Equal(t, "(print 1)\nunknown command. Type :quit to exit.\n(var a 2)\n", out.String())
	assert.Contains(t, errOut.String(), REPL_SOURCE_NAME+":1:5: syntax error: Expect variable name.")
	assert.Equal(t, []string{"print 1;", "var = ;", "var a = 2;"}, p.history)
	assert.Len(t, p.results, 1)
}

func TestReplEndOfInput(t *testing.T) {
	p := newFakePrompter("print 1;")

	var out bytes.Buffer
	status := repl(p, config{format: jsonFormat}, lox.ParserOptions{}, &out, newRenderer(io.Discard, config{noColor: true}))

	assert.Equal(t, 0, status)
	assert.Contains(t, out.String(), `"Print"`)
}
