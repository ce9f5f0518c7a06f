package ui

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// handleHelp renders the embedded usage document.
func (s *Server) handleHelp(c *gin.Context) {
	source, err := embeddedFiles.ReadFile("docs/help.md")
	if err != nil {
		log.Printf("[handleHelp] FAILED - %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Help document unavailable"})
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	rendered := markdown.ToHTML(source, p, nil)

	c.HTML(http.StatusOK, "help.html", gin.H{
		"Content": template.HTML(rendered),
	})
}
