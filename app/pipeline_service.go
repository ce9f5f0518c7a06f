package app

import (
	"log"

	"github.com/google/uuid"

	"marksheet/adapters/archive"
	"marksheet/domain/partition"
	"marksheet/domain/sheet"
	"marksheet/internal/analysis"
	"marksheet/internal/config"
	"marksheet/internal/errors"
	"marksheet/ports"
)

// SummaryEntryName is the archive entry carrying the per-subject
// statistics sheet when summaries are enabled.
const SummaryEntryName = "Summary.xlsx"

// PipelineService runs one uploaded marksheet through the full
// read -> enrich -> partition -> archive pipeline. A run is synchronous
// and single-threaded; the service holds no per-run state, so one
// instance may serve concurrent callers, each call owning its own
// tables and archive buffer.
type PipelineService struct {
	includeSummary bool
}

// NewPipelineService creates a pipeline service.
func NewPipelineService(cfg config.PipelineConfig) *PipelineService {
	return &PipelineService{includeSummary: cfg.IncludeSummary}
}

// Result summarizes one completed pipeline run.
type Result struct {
	RunID        string
	Archive      []byte
	Groups       int
	Subjects     int
	RowsIncluded int
	RowsSkipped  int
}

// Process executes one pipeline run. Cell-level parse failures and
// excluded rows never fail the run; only structural problems (source
// unreadable, archive unwritable) surface, as a single error.
func (s *PipelineService) Process(source ports.TableSource) (*Result, error) {
	runID := uuid.NewString()
	log.Printf("[PipelineService] run %s: reading input table", runID)

	raw, err := source.ReadTable()
	if err != nil {
		log.Printf("[PipelineService] run %s: FAILED - %v", runID, err)
		return nil, errors.WithCode(errors.CodeReadFailed, errors.Wrap(err, "failed to read input table"))
	}

	enriched, layout := sheet.Enrich(raw)
	log.Printf("[PipelineService] run %s: enriched %d rows (%d subjects, %d extra columns)",
		runID, len(enriched.Rows), layout.NumSubjects, layout.ExtraCols)

	partitioned := partition.Partition(enriched)
	log.Printf("[PipelineService] run %s: %d groups, %d rows included, %d rows skipped",
		runID, len(partitioned.Groups), partitioned.Included(), partitioned.Skipped)

	entries := make([]archive.Entry, 0, len(partitioned.Groups)+1)
	for _, g := range partitioned.Groups {
		entries = append(entries, archive.Entry{Name: g.FileName(), Table: g.Table})
	}
	if s.includeSummary && layout.NumSubjects > 0 {
		summaries := analysis.Summarize(enriched, layout)
		entries = append(entries, archive.Entry{Name: SummaryEntryName, Table: analysis.SummaryTable(summaries)})
	}

	data, err := archive.Build(entries)
	if err != nil {
		log.Printf("[PipelineService] run %s: FAILED - %v", runID, err)
		return nil, errors.WithCode(errors.CodeArchiveFailed, errors.Wrap(err, "failed to build archive"))
	}

	return &Result{
		RunID:        runID,
		Archive:      data,
		Groups:       len(partitioned.Groups),
		Subjects:     layout.NumSubjects,
		RowsIncluded: partitioned.Included(),
		RowsSkipped:  partitioned.Skipped,
	}, nil
}
