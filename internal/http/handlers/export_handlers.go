package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/SSG3800/Retail-POS-System/internal/export"
)

// ExportHandler godoc
// @Summary Export catalog and today's sales to a spreadsheet
// @Tags export
// @Produce json
// @Success 201 {object} ExportResult
// @Failure 500 {string} string "Internal error"
// @Router /export [post]
// @Security BearerAuth
func ExportHandler(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(exportDir, export.Filename(time.Now()))

	if err := exporter.Snapshot(path); err != nil {
		log.Printf("export failed: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, ExportResult{File: path}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
