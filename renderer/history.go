package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/patrimoine"
)

// History renders the history report to a markdown string.
func History(r *patrimoine.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio History %s to %s", r.Range.From, r.Range.To))

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{
			e.Date.String(),
			e.Direct.String(),
			e.Carried.String(),
			e.Total.String(),
			e.NetFlow.SignedString(),
			e.PeriodReturn.String(),
			e.Cumulative.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Direct", "Carried", "Total", "Flow", "Return", "Cumulative"},
		Rows:   rows,
	})

	return doc.String()
}

// CompositeView renders the detail of one resolved snapshot, with the
// carried-forward entries annotated with their source dates.
func CompositeView(v *patrimoine.CompositeView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Composite View on %s", v.On))

	rows := make([][]string, 0, len(v.Direct)+len(v.Carried))
	for _, d := range v.Direct {
		rows = append(rows, []string{d.Asset.String(), d.Value.String()})
	}
	for _, c := range v.Carried {
		rows = append(rows, []string{c.Asset.String(), sourced(c.Value, c.SourceDate)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset", "Value"},
		Rows:   rows,
	})
	doc.PlainText("Total: " + v.Total.String())

	return doc.String()
}
