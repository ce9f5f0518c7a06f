package sheet

import (
	"fmt"

	"marksheet/domain/marks"
)

// The leading fixed columns of every marksheet.
var fixedHeaders = []string{"Register No", "Name", "College ID"}

const (
	fixedCols        = 3
	subjectInputCols = 4 // Subject Code, Subject Name, Marks, Result
	subjectOutCols   = 7 // input block plus Internal, External, Total
)

// Layout describes how the raw input columns group into subject blocks.
type Layout struct {
	InputCols   int
	NumSubjects int
	ExtraCols   int // unlabeled trailing input columns
}

// InferLayout derives the subject-block layout from the raw column
// count. Undersized tables are not an error; they simply carry zero
// subjects.
func InferLayout(inputCols int) Layout {
	numSubjects := 0
	if inputCols > fixedCols {
		numSubjects = (inputCols - fixedCols) / subjectInputCols
	}
	extra := inputCols - fixedCols - numSubjects*subjectInputCols
	if extra < 0 {
		extra = 0
	}
	return Layout{InputCols: inputCols, NumSubjects: numSubjects, ExtraCols: extra}
}

// EnrichedHeader synthesizes the output header: the three fixed labels,
// then a 7-column block per subject, then placeholders for any residual
// input columns named after their original 1-based position.
func (l Layout) EnrichedHeader() []string {
	header := make([]string, 0, l.OutputCols())
	header = append(header, fixedHeaders...)
	for i := 1; i <= l.NumSubjects; i++ {
		header = append(header,
			fmt.Sprintf("Subject Code %d", i),
			fmt.Sprintf("Subject Name %d", i),
			fmt.Sprintf("Marks %d", i),
			fmt.Sprintf("Result %d", i),
			fmt.Sprintf("Internal %d", i),
			fmt.Sprintf("External %d", i),
			fmt.Sprintf("Total %d", i),
		)
	}
	for j := 0; j < l.ExtraCols; j++ {
		header = append(header, fmt.Sprintf("Column %d", fixedCols+l.NumSubjects*subjectInputCols+j+1))
	}
	return header
}

// OutputCols is the width of the enriched table.
func (l Layout) OutputCols() int {
	return fixedCols + l.NumSubjects*subjectOutCols + l.ExtraCols
}

// MarksColumn returns the enriched-table index of one subject's raw
// Marks column. Subjects are 0-based here.
func (l Layout) MarksColumn(subject int) int {
	return fixedCols + subject*subjectOutCols + 2
}

// TotalColumn returns the enriched-table index of one subject's derived
// Total column.
func (l Layout) TotalColumn(subject int) int {
	return fixedCols + subject*subjectOutCols + 6
}

// Enrich expands each 4-column subject block of the raw table to 7
// columns by deriving internal/external/total from the block's Marks
// cell. Output rows are built column-by-column against the original
// layout, so no in-place shifting ever happens. Rows narrower than the
// header are padded with empty cells; Enrich never fails.
func Enrich(raw [][]any) (*Table, Layout) {
	inputCols := 0
	for _, row := range raw {
		if len(row) > inputCols {
			inputCols = len(row)
		}
	}

	layout := InferLayout(inputCols)
	table := &Table{Header: layout.EnrichedHeader()}
	for _, row := range raw {
		table.Rows = append(table.Rows, layout.enrichRow(row))
	}
	return table, layout
}

func (l Layout) enrichRow(in Row) Row {
	cell := func(i int) any {
		if i < len(in) {
			return in[i]
		}
		return ""
	}

	out := make(Row, 0, l.OutputCols())
	for i := 0; i < fixedCols; i++ {
		out = append(out, cell(i))
	}
	for s := 0; s < l.NumSubjects; s++ {
		base := fixedCols + s*subjectInputCols
		out = append(out, cell(base), cell(base+1), cell(base+2), cell(base+3))

		split := marks.Split(cell(base + 2))
		out = append(out, markCell(split.Internal), markCell(split.External), markCell(split.Total))
	}
	for j := 0; j < l.ExtraCols; j++ {
		out = append(out, cell(fixedCols+l.NumSubjects*subjectInputCols+j))
	}
	return out
}

// markCell renders an absent component as an empty cell.
func markCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
