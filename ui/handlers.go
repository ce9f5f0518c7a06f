package ui

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marksheet/adapters/excel"
	"marksheet/domain/partition"
)

// archiveFileName is the download name offered to the browser.
const archiveFileName = "department_batch_excel_files.zip"

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"MaxUploadMB": s.cfg.Upload.MaxSizeMB,
	})
}

func (s *Server) handleDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"departments": partition.Departments})
}

// handleProcess accepts one marksheet upload, runs the pipeline, and
// responds with the partitioned archive. Any pipeline failure surfaces
// as a single error message.
func (s *Server) handleProcess(c *gin.Context) {
	log.Printf("[handleProcess] Starting marksheet upload")

	file, header, err := c.Request.FormFile("marksheet")
	if err != nil {
		log.Printf("[handleProcess] FAILED - No file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > s.cfg.Upload.MaxSizeBytes() {
		log.Printf("[handleProcess] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the %dMB limit",
				float64(header.Size)/(1024*1024), s.cfg.Upload.MaxSizeMB),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".csv" {
		log.Printf("[handleProcess] FAILED - Invalid file extension: %s", header.Filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Excel (.xlsx) and CSV (.csv) files are allowed"})
		return
	}

	// Spool the upload to a temp file the reader can open. The file is
	// removed before the handler returns on every path.
	tmpPath, err := spoolUpload(file, ext)
	if err != nil {
		log.Printf("[handleProcess] FAILED - Could not store upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}
	defer os.Remove(tmpPath)

	result, err := s.pipeline.Process(excel.NewDataReader(tmpPath))
	if err != nil {
		log.Printf("[handleProcess] FAILED - %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("An error occurred: %v", err)})
		return
	}

	log.Printf("[handleProcess] Run %s complete: %d groups, %d rows included, %d skipped",
		result.RunID, result.Groups, result.RowsIncluded, result.RowsSkipped)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archiveFileName))
	c.Header("X-Rows-Included", strconv.Itoa(result.RowsIncluded))
	c.Header("X-Rows-Skipped", strconv.Itoa(result.RowsSkipped))
	c.Data(http.StatusOK, "application/zip", result.Archive)
}

func spoolUpload(file multipart.File, ext string) (string, error) {
	tmp, err := os.CreateTemp("", "marksheet-"+uuid.NewString()+"-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
