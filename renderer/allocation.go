package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/etnz/patrimoine"
)

// materiality is the threshold below which a rebalancing adjustment is
// displayed as "no action".
var materiality = decimal.NewFromInt(1)

// Allocation renders the allocation report to a markdown string.
// Adjustments smaller than one unit of currency render as "-".
func Allocation(r *patrimoine.AllocationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Allocation on %s", r.Date))
	doc.PlainText("Total value: " + r.Total.String())

	rows := make([][]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		target, action := "-", "-"
		if line.HasTarget {
			target = pct(line.Target)
			if line.Adjustment.Abs().Amount().GreaterThanOrEqual(materiality) {
				verb := "buy"
				if line.Adjustment.IsNegative() {
					verb = "sell"
				}
				action = verb + " " + line.Adjustment.Abs().String()
			}
		}
		rows = append(rows, []string{
			line.Category,
			line.Value.String(),
			pct(line.Allocation),
			target,
			action,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Value", "Allocation", "Target", "Action"},
		Rows:   rows,
	})

	return doc.String()
}
