package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/patrimoine"
)

// fmtCmd rewrites the record file in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the record file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pat fmt

  Validates and formats the record file. This command reads all records,
  validates them, sorts snapshots chronologically, and writes them back
  in a canonical JSONL format: targets first, then each snapshot followed
  by its values and flows.

`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	history, targets, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tmp := *recordFile + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := patrimoine.EncodeHistory(f, history, targets); err != nil {
		f.Close()
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error encoding records: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(tmp, *recordFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing %q: %v\n", *recordFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s\n", *recordFile)
	return subcommands.ExitSuccess
}
