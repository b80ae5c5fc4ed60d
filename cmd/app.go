// Package cmd implements the CLI application to manage a snapshot record
// file and report on the portfolio it describes.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/patrimoine"
)

// Register registers all subcommands. A main package calls Register()
// and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&valueCmd{}, "records")
	c.Register(&flowCmd{}, "records")
	c.Register(&targetCmd{}, "records")
	c.Register(&importCmd{}, "records")
	c.Register(&fmtCmd{}, "records")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&rebalanceCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var recordFile = flag.String("record-file", "patrimoine.jsonl", "Path to the record file (JSONL format)")

// decodeHistory loads the record file into memory. A missing file is an
// empty portfolio, not an error.
func decodeHistory() (*patrimoine.History, *patrimoine.Targets, error) {
	f, err := os.Open(*recordFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: record file %q does not exist, starting empty", *recordFile)
		return patrimoine.NewHistory(), patrimoine.NewTargets(), nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening record file %q: %w", *recordFile, err)
	}
	defer f.Close()
	return patrimoine.DecodeHistory(f)
}

// appendRecords opens the record file in append mode and runs the given
// encoder against it.
func appendRecords(encode func(io.Writer) error) subcommands.ExitStatus {
	f, err := os.OpenFile(*recordFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening record file %q: %v\n", *recordFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to record file %q: %v\n", *recordFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended to %s\n", *recordFile)
	return subcommands.ExitSuccess
}

// parseDateFlag parses a -d flag, defaulting to today.
func parseDateFlag(s string) (patrimoine.Date, error) {
	if s == "" {
		return patrimoine.Today(), nil
	}
	return patrimoine.ParseDate(s)
}
