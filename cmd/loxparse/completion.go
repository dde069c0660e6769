package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var completer = &complete.Command{
	Flags: map[string]complete.Predictor{
		"json":                  predict.Nothing,
		"yaml":                  predict.Nothing,
		"recover":               predict.Nothing,
		"no-color":              predict.Nothing,
		"v":                     predict.Nothing,
		"history":               predict.Files("*"),
		"install-completions":   predict.Nothing,
		"uninstall-completions": predict.Nothing,
	},
	Args: predict.Files("*.lox"),
}
