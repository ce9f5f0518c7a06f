package marks

import (
	"strconv"
	"strings"
)

// Components holds the decomposed parts of a single mark cell.
// A nil field means that component is absent. The all-nil value is the
// parse-failure sentinel; callers render it as an empty cell, never as
// a zero or the text "None".
type Components struct {
	Internal *int
	External *int
	Total    *int
}

// IsNone reports whether nothing was recovered from the cell.
func (c Components) IsNone() bool {
	return c.Internal == nil && c.External == nil && c.Total == nil
}

// Split parses one mark cell into internal, external and total marks.
// Handles both formats: "040+043" and "040". Numeric cells carry the
// total only; no internal/external split is attempted for them. Split
// never fails: empty, nil and malformed input all degrade to the
// all-nil sentinel.
func Split(value any) Components {
	switch v := value.(type) {
	case nil:
		return Components{}
	case int:
		if v == 0 {
			return Components{}
		}
		return Components{Total: intPtr(v)}
	case int64:
		if v == 0 {
			return Components{}
		}
		return Components{Total: intPtr(int(v))}
	case float64:
		if v == 0 {
			return Components{}
		}
		return Components{Total: intPtr(int(v))}
	case string:
		if v == "" {
			return Components{}
		}
		return splitString(v)
	default:
		return Components{}
	}
}

func splitString(s string) Components {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "+") {
		parts := strings.Split(s, "+")
		if len(parts) != 2 {
			return Components{}
		}
		internal, ok := parseMark(parts[0])
		if !ok {
			return Components{}
		}
		external, ok := parseMark(parts[1])
		if !ok {
			return Components{}
		}
		return Components{
			Internal: intPtr(internal),
			External: intPtr(external),
			Total:    intPtr(internal + external),
		}
	}

	total, ok := parseMark(s)
	if !ok {
		return Components{}
	}
	return Components{Total: intPtr(total)}
}

// parseMark converts a digit string to an integer after dropping leading
// zeros. An all-zero or empty-after-stripping string parses as 0.
func parseMark(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0, true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func intPtr(v int) *int { return &v }
