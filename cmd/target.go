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

// targetCmd records the target allocation percent of a category.
type targetCmd struct {
	category string
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "set the target allocation percent of a category" }
func (*targetCmd) Usage() string {
	return `pat target -c <category> <percent>

  Set the target allocation of a category, in percent of the total
  portfolio value. The rebalance report compares actual allocations with
  these targets. A later target line for the same category replaces the
  earlier one.

Usage Examples:
$ pat target -c "Equity" 60
$ pat target -c "Bonds" 40

`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to target.")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -c <category> and exactly one <percent> argument are required")
		return subcommands.ExitUsageError
	}
	percent, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid percent %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	return appendRecords(func(w io.Writer) error {
		return patrimoine.EncodeTarget(w, c.category, percent)
	})
}
