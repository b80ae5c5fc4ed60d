package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// display renders a markdown report for the terminal. When the fancy
// renderer cannot be set up (dumb terminals, pipes), the raw markdown is
// still perfectly readable, so it is printed as-is.
func display(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
