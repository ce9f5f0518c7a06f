package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"

	"marksheet/adapters/excel"
	"marksheet/domain/sheet"
)

// Entry names one table inside the output archive.
type Entry struct {
	Name  string
	Table *sheet.Table
}

// Build serializes every entry into an individually named xlsx file and
// collects them into one deflate-compressed zip archive, entirely in
// memory. No temporary files are created, so nothing can leak across
// runs.
func Build(entries []Entry) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	for _, e := range entries {
		if err := addWorkbook(zw, e); err != nil {
			zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	log.Printf("[Archive] Built archive with %d entries (%d bytes)", len(entries), buf.Len())
	return buf.Bytes(), nil
}

func addWorkbook(zw *zip.Writer, e Entry) error {
	f, err := excel.BuildWorkbook(e.Table)
	if err != nil {
		return fmt.Errorf("failed to build workbook %s: %w", e.Name, err)
	}
	defer f.Close()

	w, err := zw.Create(e.Name)
	if err != nil {
		return fmt.Errorf("failed to create archive entry %s: %w", e.Name, err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", e.Name, err)
	}
	return nil
}
