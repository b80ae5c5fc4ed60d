package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/patrimoine"
	"github.com/etnz/patrimoine/renderer"
)

// summaryCmd reports the resolved value and performance on a date.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "summarize portfolio value and performance" }
func (*summaryCmd) Usage() string {
	return `pat summary [-d <date>]

  Resolve the snapshot at or before the given date (today by default) and
  report its composite total together with 1, 3 and 12 month growth and
  Modified Dietz returns, and the cumulative TWR and CAGR since inception.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report. Defaults to today.")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	history, _, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	summary, err := patrimoine.NewSummary(history, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	display(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
