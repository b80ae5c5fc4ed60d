package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/patrimoine"
)

// importCmd records a platform's direct values from a JSON export.
type importCmd struct {
	date     string
	platform string
	category string
	currency string
	names    string
	values   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a platform's values from a JSON export" }
func (*importCmd) Usage() string {
	return `pat import -p <platform> -names <jsonpath> -values <jsonpath> [-d <date>] [-c <category>] [-cur <currency>] <file>

  Extract (name, value) pairs from a JSON export using two jsonpath
  expressions and record them as the platform's direct values on the
  snapshot of the given date. The two expressions must select the same
  number of items in matching order.

Usage Examples:
# Import a brokerage export.
$ pat import -p "MyBroker" -names '$.positions[*].label' -values '$.positions[*].marketValue' export.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot. Defaults to today.")
	f.StringVar(&c.platform, "p", "", "Platform label for every imported asset.")
	f.StringVar(&c.category, "c", "", "Category label for every imported asset.")
	f.StringVar(&c.currency, "cur", "EUR", "Currency label of the imported amounts.")
	f.StringVar(&c.names, "names", "", "jsonpath expression selecting the position names.")
	f.StringVar(&c.values, "values", "", "jsonpath expression selecting the position values.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.platform == "" || c.names == "" || c.values == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -p, -names, -values and exactly one <file> argument are required")
		return subcommands.ExitUsageError
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	export, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	imported, err := patrimoine.ImportValues(export, patrimoine.ImportSpec{
		Platform: c.platform,
		Category: c.category,
		Currency: c.currency,
		Names:    c.names,
		Values:   c.values,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Validate the whole batch against the existing records first.
	history, _, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	snapshot := history.Get(on)
	for _, v := range imported {
		if err := snapshot.AddValue(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	status := appendRecords(func(w io.Writer) error {
		for _, v := range imported {
			if err := patrimoine.EncodeValue(w, on, v); err != nil {
				return err
			}
		}
		return nil
	})
	if status == subcommands.ExitSuccess {
		fmt.Printf("Imported %d values for platform %q on %s\n", len(imported), c.platform, on)
	}
	return status
}
