package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"marksheet/domain/sheet"
)

// SubjectSummary holds descriptive statistics over one subject's
// derived Total column. Cells that failed to parse are skipped, so
// Count can be lower than the row count.
type SubjectSummary struct {
	Subject string
	Count   int
	Mean    float64
	Median  float64
	Min     float64
	Max     float64
	StdDev  float64
}

// Summarize computes per-subject statistics from the enriched table.
func Summarize(t *sheet.Table, layout sheet.Layout) []SubjectSummary {
	summaries := make([]SubjectSummary, 0, layout.NumSubjects)

	for s := 0; s < layout.NumSubjects; s++ {
		col := layout.TotalColumn(s)

		var data []float64
		for _, row := range t.Rows {
			if col >= len(row) {
				continue
			}
			if total, ok := row[col].(int); ok {
				data = append(data, float64(total))
			}
		}

		summary := SubjectSummary{
			Subject: fmt.Sprintf("Subject %d", s+1),
			Count:   len(data),
		}
		if len(data) > 0 {
			summary.Mean, _ = stats.Mean(data)
			summary.Median, _ = stats.Median(data)
			summary.Min, _ = stats.Min(data)
			summary.Max, _ = stats.Max(data)
			summary.StdDev, _ = stats.StandardDeviation(data)
		}
		summaries = append(summaries, summary)
	}

	return summaries
}

// SummaryTable renders the statistics as a table for the archive.
func SummaryTable(summaries []SubjectSummary) *sheet.Table {
	table := &sheet.Table{
		Header: []string{"Subject", "Count", "Mean", "Median", "Min", "Max", "Std Dev"},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, sheet.Row{
			s.Subject,
			s.Count,
			round2(s.Mean),
			round2(s.Median),
			round2(s.Min),
			round2(s.Max),
			round2(s.StdDev),
		})
	}
	return table
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
