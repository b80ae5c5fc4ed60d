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

// historyCmd reports the resolved snapshot series over a window.
type historyCmd struct {
	from string
	to   string
	date string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list resolved snapshots and cumulative returns" }
func (*historyCmd) Usage() string {
	return `pat history [-from <date>] [-to <date>] [-d <date>]

  List every snapshot in the window with its direct, carried-forward and
  total value, its Modified Dietz return since the previous snapshot, and
  the cumulative time-weighted return rebased to the window start.
  With -d, show the composite detail of one snapshot instead.

Usage Examples:
# The whole history.
$ pat history

# This year only, cumulative return rebased to the first snapshot of the window.
$ pat history -from 2026-01-01

# The composite detail of one snapshot.
$ pat history -d 2026-03-01

`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the window. Defaults to the first snapshot.")
	f.StringVar(&c.to, "to", "", "End of the window. Defaults to today.")
	f.StringVar(&c.date, "d", "", "Show the composite detail of this one snapshot.")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	history, _, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.date != "" {
		on, err := patrimoine.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		view, ok := history.Resolve(on)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no snapshot on %s\n", on)
			return subcommands.ExitFailure
		}
		display(renderer.CompositeView(view))
		return subcommands.ExitSuccess
	}

	window, err := c.window(history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report, err := patrimoine.NewHistoryReport(history, window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	display(renderer.History(report))
	return subcommands.ExitSuccess
}

func (c *historyCmd) window(history *patrimoine.History) (patrimoine.Range, error) {
	from := patrimoine.Date{}
	if first, ok := history.First(); ok {
		from = first.On()
	}
	if c.from != "" {
		var err error
		if from, err = patrimoine.ParseDate(c.from); err != nil {
			return patrimoine.Range{}, err
		}
	}
	to := patrimoine.Today()
	if c.to != "" {
		var err error
		if to, err = patrimoine.ParseDate(c.to); err != nil {
			return patrimoine.Range{}, err
		}
	}
	return patrimoine.NewRange(from, to), nil
}
