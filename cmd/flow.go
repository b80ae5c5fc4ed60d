package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/etnz/patrimoine"
)

// flowCmd records an external cash flow on a snapshot date.
type flowCmd struct {
	date        string
	currency    string
	description string
}

func (*flowCmd) Name() string     { return "flow" }
func (*flowCmd) Synopsis() string { return "record an external cash flow on a date" }
func (*flowCmd) Usage() string {
	return `pat flow -desc <description> [-d <date>] [-cur <currency>] <amount>

  Record money crossing the portfolio boundary on the snapshot of the
  given date: positive amounts are deposits, negative amounts are
  withdrawals. Flows adjust the Modified Dietz and time-weighted returns.

Usage Examples:
# A monthly deposit.
$ pat flow -desc "January savings" 1000

# A withdrawal.
$ pat flow -desc "Car down payment" -- -5000

`
}

func (c *flowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot. Defaults to today.")
	f.StringVar(&c.currency, "cur", "EUR", "Currency label of the amount.")
	f.StringVar(&c.description, "desc", "", "Description, unique within the snapshot.")
}

func (c *flowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.description == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -desc <description> and exactly one <amount> argument are required")
		return subcommands.ExitUsageError
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	flow := patrimoine.CashFlow{
		Amount:      patrimoine.M(amount, c.currency),
		Description: c.description,
	}

	history, _, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := history.Get(on).AddFlow(flow); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	return appendRecords(func(w io.Writer) error {
		return patrimoine.EncodeFlow(w, on, flow)
	})
}
