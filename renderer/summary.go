package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/patrimoine"
)

// Summary renders the summary report to a markdown string.
func Summary(s *patrimoine.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Total value: %s (%d snapshots)", s.TotalValue, s.SnapshotCount))

	doc.H2("Performance")
	rows := make([][]string, 0, len(s.Periods))
	for _, p := range s.Periods {
		from := "N/A"
		if !p.From.IsZero() {
			from = p.From.String()
		}
		rows = append(rows, []string{
			"1 " + p.Period.String(),
			from,
			p.Value.Start.String(),
			p.Growth.String(),
			p.Dietz.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Period", "From", "Start value", "Growth", "Modified Dietz"},
		Rows:   rows,
	})

	doc.H2("Since inception")
	inception := s.Inception
	from := "N/A"
	if !inception.From.IsZero() {
		from = inception.From.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"From", "Start value", "Cumulative TWR", "CAGR"},
		Rows: [][]string{{
			from,
			inception.Value.Start.String(),
			inception.TWR.String(),
			inception.CAGR.String(),
		}},
	})

	return doc.String()
}
