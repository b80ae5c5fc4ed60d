// Command pat manages a portfolio of snapshot records and reports on it.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/patrimoine/cmd"
)

func main() {
	// Shell completion runs first and exits when invoked by the shell.
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	dateFlag := map[string]complete.Predictor{"d": predict.Something}
	return &complete.Command{
		Flags: map[string]complete.Predictor{"record-file": predict.Files("*.jsonl")},
		Sub: map[string]*complete.Command{
			"value":     {Flags: map[string]complete.Predictor{"d": predict.Something, "n": predict.Something, "p": predict.Something, "c": predict.Something, "cur": predict.Something}},
			"flow":      {Flags: map[string]complete.Predictor{"d": predict.Something, "desc": predict.Something, "cur": predict.Something}},
			"target":    {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"import":    {Flags: map[string]complete.Predictor{"d": predict.Something, "p": predict.Something, "names": predict.Something, "values": predict.Something}, Args: predict.Files("*.json")},
			"fmt":       {},
			"summary":   {Flags: dateFlag},
			"history":   {Flags: map[string]complete.Predictor{"from": predict.Something, "to": predict.Something, "d": predict.Something}},
			"rebalance": {Flags: dateFlag},
			"assist":    {},
		},
	}
}
