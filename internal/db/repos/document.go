package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// DocumentFilter narrows document listings
type DocumentFilter struct {
	Type      *models.DocumentType
	ProjectID *uint
	MemberID  *uint
}

func (f DocumentFilter) scopes() []Scope {
	return []Scope{
		eq("type", f.Type),
		eq("project_id", f.ProjectID),
		eq("member_id", f.MemberID),
	}
}

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	Repository[models.Document]
}

// NewDocumentRepository creates a new instance of DocumentRepository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{newRepository[models.Document](db, "document", "title", "file_name")}
}

// List retrieves documents matching the filter, newest first
func (r *DocumentRepository) List(ctx context.Context, f DocumentFilter, opts *models.ListOptions) ([]models.Document, error) {
	return r.list(ctx, opts, f.scopes()...)
}

// SetContent records the stored file of a document
func (r *DocumentRepository) SetContent(ctx context.Context, id uint, key, fileName, contentType string, size int64) error {
	res := r.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).Updates(map[string]interface{}{
		"storage_key":  key,
		"file_name":    fileName,
		"content_type": contentType,
		"size":         size,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.translate(gorm.ErrRecordNotFound, id)
	}
	return nil
}
