// Package handlers serves the REST endpoints that sit beside the GraphQL API:
// document content transfer and health checks.
package handlers

import (
	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/services"
)

// APIHandler holds the dependencies shared by the REST handlers
type APIHandler struct {
	documents *services.Document
	db        *gorm.DB
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(documents *services.Document, db *gorm.DB) *APIHandler {
	return &APIHandler{
		documents: documents,
		db:        db,
	}
}
