package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const analystInstruction = `You are a personal portfolio analyst.
You are given the user's portfolio reports in markdown: a summary with
period performance, a snapshot history with carried-forward values, and a
category allocation with rebalancing targets. Answer questions about these
numbers precisely and concisely. When a metric shows N/A, explain that it
is mathematically undefined for the recorded data rather than guessing a
value. Never invent numbers that are not in the reports.`

// Analyst is a chat with the portfolio analyst persona, seeded with the
// rendered reports as context.
type Analyst struct {
	ModelName string
	Reports   []string // rendered markdown reports handed over as context
	chat      *genai.Chat
}

// NewAnalyst creates an analyst over the given rendered reports.
func NewAnalyst(reports ...string) *Analyst {
	return &Analyst{ModelName: defaultModel, Reports: reports}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: analystInstruction + "\n\n" + strings.Join(a.Reports, "\n\n")}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
