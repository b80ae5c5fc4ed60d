// Package agent implements the interactive AI assistant of the pat CLI.
// The assistant is a chat session seeded with the rendered portfolio
// reports, so it can answer questions about the numbers without any tool
// access to the record file itself.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Analyst
}

// New creates an Agent talking to the given analyst, reading user input
// from r (e.g. os.Stdin) and writing responses to w (e.g. os.Stdout).
func New(w io.Writer, r io.Reader, analyst *Analyst) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Analyst: analyst}
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts are consumed
// before reading from the user; "bye" or EOF ends the session cleanly.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to pat assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
