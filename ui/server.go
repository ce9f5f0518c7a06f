package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"marksheet/app"
	"marksheet/internal/config"
)

//go:embed templates/*.html docs/*.md
var embeddedFiles embed.FS

// Server hosts the upload/download web shell around the pipeline. All
// interactive state lives here; the pipeline itself is a pure function
// from input file to output archive.
type Server struct {
	router   *gin.Engine
	pipeline *app.PipelineService
	cfg      *config.Config
}

// NewServer creates the web server and wires its routes.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:   gin.Default(),
		pipeline: app.NewPipelineService(cfg.Pipeline),
		cfg:      cfg,
	}
	s.router.SetHTMLTemplate(templates)
	s.router.MaxMultipartMemory = 8 << 20

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/help", s.handleHelp)

	api := s.router.Group("/api")
	{
		api.GET("/departments", s.handleDepartments)
		api.POST("/marksheets/process", s.handleProcess)
	}
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] Listening on %s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}
