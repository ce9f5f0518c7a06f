package ui

import (
	"archive/zip"
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marksheet/internal/config"
	"marksheet/internal/testkit"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(&config.Config{
		Server:   config.ServerConfig{Port: "0", GinMode: "test"},
		Upload:   config.UploadConfig{MaxSizeMB: 5},
		Pipeline: config.PipelineConfig{IncludeSummary: false},
	})
	require.NoError(t, err)
	return s
}

func multipartUpload(t *testing.T, fieldFileName, path string) (*bytes.Buffer, string) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("marksheet", fieldFileName)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func fixtureXLSX(t *testing.T) string {
	t.Helper()

	cfg := testkit.DefaultGeneratorConfig()
	cfg.Students = 20
	cfg.Subjects = 2
	table := testkit.NewGenerator(cfg).GenerateTable()

	path := filepath.Join(t.TempDir(), "marksheet.xlsx")
	require.NoError(t, testkit.WriteXLSX(path, table))
	return path
}

func TestHandleProcess_ReturnsArchive(t *testing.T) {
	s := newTestServer(t)
	body, contentType := multipartUpload(t, "marksheet.xlsx", fixtureXLSX(t))

	req := httptest.NewRequest(http.MethodPost, "/api/marksheets/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "department_batch_excel_files.zip")
	assert.Equal(t, "20", rec.Header().Get("X-Rows-Included"))
	assert.Equal(t, "0", rec.Header().Get("X-Rows-Skipped"))

	payload, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	assert.NotEmpty(t, zr.File)
}

func TestHandleProcess_RejectsWrongExtension(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "marksheet.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a marksheet"), 0o644))
	body, contentType := multipartUpload(t, "marksheet.pdf", path)

	req := httptest.NewRequest(http.MethodPost, "/api/marksheets/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHandleProcess_RejectsMissingFile(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/marksheets/process", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProcess_CorruptWorkbookFailsRun(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0o644))
	body, contentType := multipartUpload(t, "broken.xlsx", path)

	req := httptest.NewRequest(http.MethodPost, "/api/marksheets/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error occurred")
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "marksheet")
}

func TestHandleHelp(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/help", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Input format")
}

func TestHandleDepartments(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data Science")
}
