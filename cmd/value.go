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

// valueCmd records the market value of one asset on a snapshot date.
type valueCmd struct {
	date     string
	name     string
	platform string
	category string
	currency string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "record the market value of an asset on a date" }
func (*valueCmd) Usage() string {
	return `pat value -n <name> [-p <platform>] [-c <category>] [-d <date>] [-cur <currency>] <amount>

  Record the market value of one asset on the snapshot of the given date
  (today by default). Recording any value for a platform makes that
  platform direct on that date, replacing its carried-forward values.

Usage Examples:
# Record today's value of an ETF held at a broker.
$ pat value -n "World ETF" -p "MyBroker" -c "Equity" 12500.40

`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot. Defaults to today.")
	f.StringVar(&c.name, "n", "", "Asset name.")
	f.StringVar(&c.platform, "p", "", "Platform holding the asset. Empty means no platform.")
	f.StringVar(&c.category, "c", "", "Allocation category of the asset.")
	f.StringVar(&c.currency, "cur", "EUR", "Currency label of the amount.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -n <name> and exactly one <amount> argument are required")
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

	value := patrimoine.AssetValue{
		Asset: patrimoine.Asset{Name: c.name, Platform: c.platform, Category: c.category},
		Value: patrimoine.M(amount, c.currency),
	}

	// Validate against the existing records before appending.
	history, _, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := history.Get(on).AddValue(value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	return appendRecords(func(w io.Writer) error {
		return patrimoine.EncodeValue(w, on, value)
	})
}
