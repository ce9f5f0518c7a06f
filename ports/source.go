package ports

// TableSource supplies the raw rectangular marksheet table decoded from
// an uploaded file. No header row is assumed present. Implementations
// own format detection and must fail with a single error for structural
// problems (unreadable file, inconsistent column counts); they never
// repair cell-level content.
type TableSource interface {
	ReadTable() ([][]any, error)
}
