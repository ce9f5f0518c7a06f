package partition

import (
	"strings"

	"marksheet/domain/sheet"
)

const (
	batchLen       = 2
	deptCodeStart  = 2
	deptCodeEnd    = 5
	minRegisterLen = 5
)

// Key identifies one output group.
type Key struct {
	Department string
	Batch      string
}

// FileName is the archive entry name for this group's workbook.
func (k Key) FileName() string {
	return strings.ReplaceAll(k.Department, " ", "_") + "_Batch_" + k.Batch + ".xlsx"
}

// Group is one department/batch output table. Its header is the shared
// enriched-table header; rows keep their first-seen order.
type Group struct {
	Key
	Table *sheet.Table
}

// Result holds the partitioned groups in first-seen order plus the
// count of rows excluded for bad or unrecognized register numbers.
type Result struct {
	Groups  []*Group
	Skipped int
}

// Included is the total number of rows across all output groups.
func (r *Result) Included() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Table.Rows)
	}
	return n
}

// Partition groups the enriched rows by the department and batch-year
// codes sliced from the register number. Rows whose register number is
// not a string, too short to slice, or carrying an unknown department
// code are silently dropped; they never fail the run.
func Partition(t *sheet.Table) *Result {
	result := &Result{}
	index := make(map[Key]*Group)

	for _, row := range t.Rows {
		key, ok := keyFor(row)
		if !ok {
			result.Skipped++
			continue
		}

		group := index[key]
		if group == nil {
			group = &Group{Key: key, Table: &sheet.Table{Header: t.Header}}
			index[key] = group
			result.Groups = append(result.Groups, group)
		}
		group.Table.Rows = append(group.Table.Rows, row)
	}

	return result
}

// keyFor slices the partition key out of the row's register number. No
// normalization is applied to the codes.
func keyFor(row sheet.Row) (Key, bool) {
	if len(row) == 0 {
		return Key{}, false
	}
	register, ok := row[0].(string)
	if !ok || len(register) < minRegisterLen {
		return Key{}, false
	}

	name, ok := Departments[register[deptCodeStart:deptCodeEnd]]
	if !ok {
		return Key{}, false
	}
	return Key{Department: name, Batch: register[:batchLen]}, true
}
