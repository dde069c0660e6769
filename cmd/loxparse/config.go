package main

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	NO_COLOR_ENV_VAR    = "NO_COLOR"
	FORCE_COLOR_ENV_VAR = "FORCE_COLOR"
	HISTORY_ENV_VAR     = "LOXPARSE_HISTORY"

	DEFAULT_HISTORY_FILENAME = ".loxparse_history"
)

type outputFormat int

const (
	sexprFormat outputFormat = iota
	jsonFormat
	yamlFormat
)

type cliFlags struct {
	json                 bool
	yaml                 bool
	recover              bool
	noColor              bool
	verbose              bool
	history              string
	installCompletions   bool
	uninstallCompletions bool
}

type config struct {
	format     outputFormat
	recover    bool
	noColor    bool
	forceColor bool
	verbose    bool
	// history is the prompt history file, empty when history is not kept.
	history string
}

// newConfig merges the command line flags with the environment. Flags take
// precedence over environment variables.
func newConfig(flags cliFlags, getenv func(string) string) (config, error) {
	cfg := config{
		recover: flags.recover,
		verbose: flags.verbose,
	}

	switch {
	case flags.json && flags.yaml:
		return config{}, errors.New("-json and -yaml cannot be used together")
	case flags.json:
		cfg.format = jsonFormat
	case flags.yaml:
		cfg.format = yamlFormat
	}

	cfg.noColor = flags.noColor || getenv(NO_COLOR_ENV_VAR) != ""
	if s := getenv(FORCE_COLOR_ENV_VAR); !cfg.noColor {
		cfg.forceColor = len(s) != 0 && s != "false" && s != "0"
	}

	cfg.history = flags.history
	if cfg.history == "" {
		cfg.history = getenv(HISTORY_ENV_VAR)
	}
	if cfg.history == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.history = filepath.Join(home, DEFAULT_HISTORY_FILENAME)
		}
	}
	return cfg, nil
}
