package app

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"marksheet/internal/config"
	"marksheet/internal/testkit"
)

// staticSource serves an in-memory table as a ports.TableSource.
type staticSource struct {
	table [][]any
	err   error
}

func (s *staticSource) ReadTable() ([][]any, error) {
	return s.table, s.err
}

func openArchive(t *testing.T, data []byte) *zip.Reader {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func entryNames(zr *zip.Reader) []string {
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestPipeline_EndToEnd(t *testing.T) {
	source := &staticSource{table: [][]any{
		{"2828M1001", "Anita", "C-101", "MAT101", "Mathematics", "040+043", "PASS"},
		{"2525F1002", "Bala", "C-102", "MAT101", "Mathematics", "075", "PASS"},
		{"XX", "too short", "C-103", "MAT101", "Mathematics", "050", "PASS"},
	}}

	svc := NewPipelineService(config.PipelineConfig{IncludeSummary: false})
	result, err := svc.Process(source)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Groups)
	assert.Equal(t, 1, result.Subjects)
	assert.Equal(t, 2, result.RowsIncluded)
	assert.Equal(t, 1, result.RowsSkipped)
	assert.NotEmpty(t, result.RunID)

	zr := openArchive(t, result.Archive)
	assert.Equal(t, []string{"Data_Science_Batch_28.xlsx", "BBA_Batch_25.xlsx"}, entryNames(zr))

	// Spot-check one workbook: header plus the single group row, with
	// the derived columns filled in.
	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	f, err := excelize.OpenReader(rc)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Register No", rows[0][0])
	assert.Equal(t, "Internal 1", rows[0][7])
	assert.Equal(t, []string{"2828M1001", "Anita", "C-101", "MAT101", "Mathematics", "040+043", "PASS", "40", "43", "83"}, rows[1])
}

func TestPipeline_SummaryEntry(t *testing.T) {
	source := &staticSource{table: [][]any{
		{"2828M1001", "Anita", "C-101", "MAT101", "Mathematics", "040+043", "PASS"},
	}}

	svc := NewPipelineService(config.PipelineConfig{IncludeSummary: true})
	result, err := svc.Process(source)
	require.NoError(t, err)

	zr := openArchive(t, result.Archive)
	assert.Contains(t, entryNames(zr), SummaryEntryName)
}

func TestPipeline_NoSummaryWithoutSubjects(t *testing.T) {
	source := &staticSource{table: [][]any{
		{"2828M1001", "Anita", "C-101"},
	}}

	svc := NewPipelineService(config.PipelineConfig{IncludeSummary: true})
	result, err := svc.Process(source)
	require.NoError(t, err)

	zr := openArchive(t, result.Archive)
	assert.NotContains(t, entryNames(zr), SummaryEntryName)
}

func TestPipeline_SourceFailureIsFatal(t *testing.T) {
	source := &staticSource{err: errors.New("corrupt workbook")}

	svc := NewPipelineService(config.PipelineConfig{})
	result, err := svc.Process(source)
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestPipeline_GeneratedFixture(t *testing.T) {
	cfg := testkit.DefaultGeneratorConfig()
	cfg.Students = 60
	cfg.Subjects = 3
	cfg.BadRowRate = 0.2
	table := testkit.NewGenerator(cfg).GenerateTable()

	svc := NewPipelineService(config.PipelineConfig{IncludeSummary: false})
	result, err := svc.Process(&staticSource{table: table})
	require.NoError(t, err)

	// Included plus skipped covers every input row.
	assert.Equal(t, len(table), result.RowsIncluded+result.RowsSkipped)

	// One archive entry per group, all following the naming scheme.
	zr := openArchive(t, result.Archive)
	require.Len(t, zr.File, result.Groups)
	for _, f := range zr.File {
		assert.Regexp(t, `^[A-Za-z._]+_Batch_\d{2}\.xlsx$`, f.Name)
	}
}
