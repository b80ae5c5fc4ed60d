package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/etnz/patrimoine"
	"github.com/etnz/patrimoine/agent"
	"github.com/etnz/patrimoine/renderer"
)

// assistCmd starts the interactive AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `pat assist [question]

  Start an interactive session with the AI assistant. The assistant is
  given the rendered summary, history and allocation reports as context
  and answers questions about them. Requires Gemini credentials in the
  environment.

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	history, targets, err := decodeHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	reports := make([]string, 0, 3)
	if summary, err := patrimoine.NewSummary(history, patrimoine.Today()); err == nil {
		reports = append(reports, renderer.Summary(summary))
	}
	if first, ok := history.First(); ok {
		window := patrimoine.NewRange(first.On(), patrimoine.Today())
		if report, err := patrimoine.NewHistoryReport(history, window); err == nil {
			reports = append(reports, renderer.History(report))
		}
	}
	if allocation, err := patrimoine.NewAllocationReport(history, targets, patrimoine.Today()); err == nil {
		reports = append(reports, renderer.Allocation(allocation))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(reports...))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
