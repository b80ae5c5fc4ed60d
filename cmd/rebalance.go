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

// rebalanceCmd reports category allocations against their targets.
type rebalanceCmd struct {
	date string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "report allocations and rebalancing adjustments" }
func (*rebalanceCmd) Usage() string {
	return `pat rebalance [-d <date>]

  Break the resolved portfolio down by category and, for categories with a
  recorded target, suggest the buy or sell amount that would match it.
  Adjustments under one unit of currency display as no action.

`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report. Defaults to today.")
}

func (c *rebalanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	history, targets, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := patrimoine.NewAllocationReport(history, targets, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	display(renderer.Allocation(report))
	return subcommands.ExitSuccess
}
