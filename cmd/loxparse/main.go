package main

// loxparse parses programs written in a subset of Lox and prints their syntax
// trees. Without file arguments it starts an interactive prompt.

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/posener/complete/v2/install"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ltungv/lox/loxparse/internal/ast"
	"github.com/ltungv/lox/loxparse/internal/lox"
)

const (
	COMMAND_NAME = "loxparse"

	IO_FAILURE_STATUS_CODE    = 1
	USAGE_STATUS_CODE         = 64
	PARSE_FAILURE_STATUS_CODE = 65
)

const usage = `Usage: loxparse [flags] [file...]

Parses every file and prints its syntax tree. Without files, starts a prompt.

Flags:
`

func main() {
	//handle completions
	completer.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	flags := flag.NewFlagSet(COMMAND_NAME, flag.ContinueOnError)
	flags.SetOutput(errW)
	flags.Usage = func() {
		fmt.Fprint(errW, usage)
		flags.PrintDefaults()
	}

	var flagValues cliFlags
	flags.BoolVar(&flagValues.json, "json", false, "print the syntax tree as JSON")
	flags.BoolVar(&flagValues.yaml, "yaml", false, "print the syntax tree as YAML")
	flags.BoolVar(&flagValues.recover, "recover", false, "keep parsing after a syntax error and report every error")
	flags.BoolVar(&flagValues.noColor, "no-color", false, "never color diagnostics")
	flags.BoolVar(&flagValues.verbose, "v", false, "log parser activity to stderr")
	flags.StringVar(&flagValues.history, "history", "", "prompt history file")
	flags.BoolVar(&flagValues.installCompletions, "install-completions", false, "install shell completions")
	flags.BoolVar(&flagValues.uninstallCompletions, "uninstall-completions", false, "uninstall shell completions")

	if err := flags.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return USAGE_STATUS_CODE
	}

	switch {
	case flagValues.installCompletions:
		if err := install.Install(COMMAND_NAME); err != nil {
			fmt.Fprintln(errW, err)
			return IO_FAILURE_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return 0
	case flagValues.uninstallCompletions:
		if err := install.Uninstall(COMMAND_NAME); err != nil {
			fmt.Fprintln(errW, err)
			return IO_FAILURE_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return 0
	}

	cfg, err := newConfig(flagValues, os.Getenv)
	if err != nil {
		fmt.Fprintln(errW, err)
		flags.Usage()
		return USAGE_STATUS_CODE
	}

	logger := newLogger(errW, cfg)
	opts := lox.ParserOptions{Recover: cfg.recover, Logger: &logger}
	renderer := newRenderer(errW, cfg)

	if flags.NArg() == 0 {
		return runPrompt(cfg, opts, outW, renderer, logger)
	}
	return runFiles(context.Background(), flags.Args(), cfg, opts, outW, errW, renderer, logger)
}

func newLogger(errW io.Writer, cfg config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: errW, NoColor: cfg.noColor, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

type fileResult struct {
	path    string
	source  string
	program *ast.Program
	err     error
	done    bool
}

// runFiles parses the files concurrently and prints the results in the order
// the files were given. A file that cannot be read stops the remaining work.
func runFiles(
	ctx context.Context,
	paths []string,
	cfg config,
	opts lox.ParserOptions,
	outW io.Writer,
	errW io.Writer,
	renderer *diagnosticRenderer,
	logger zerolog.Logger,
) int {
	results := make([]fileResult, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			start := time.Now()
			source := string(content)
			program, err := lox.Parse(source, opts)
			logger.Debug().
				Str("file", path).
				Int("bytes", len(content)).
				Dur("took", time.Since(start)).
				Bool("ok", err == nil).
				Msg("parsed file")

			results[i] = fileResult{path, source, program, err, true}
			return nil
		})
	}
	ioErr := group.Wait()

	failed := false
	for _, res := range results {
		if !res.done {
			continue
		}
		if res.err != nil {
			failed = true
			renderer.renderError(res.path, res.source, res.err)
			continue
		}
		if len(paths) > 1 && cfg.format == sexprFormat {
			fmt.Fprintf(outW, "// %s\n", res.path)
		}
		if err := writeProgram(outW, res.program, cfg.format); err != nil {
			fmt.Fprintln(errW, err)
			return IO_FAILURE_STATUS_CODE
		}
	}

	if ioErr != nil {
		fmt.Fprintln(errW, ioErr)
		return IO_FAILURE_STATUS_CODE
	}
	if failed {
		return PARSE_FAILURE_STATUS_CODE
	}
	return 0
}

func writeProgram(w io.Writer, program *ast.Program, format outputFormat) error {
	switch format {
	case jsonFormat:
		content, err := ast.MarshalProgram(program)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", content)
		return err
	case yamlFormat:
		content, err := ast.MarshalProgram(program)
		if err != nil {
			return err
		}
		content, err = yaml.JSONToYAML(content)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n%s", content)
		return err
	default:
		_, err := io.WriteString(w, ast.Sprint(program))
		return err
	}
}
