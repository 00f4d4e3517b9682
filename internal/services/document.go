package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/labtrack/labtrack/internal/blob"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/db/repos"
	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/logger"
)

// DocumentInput carries the fields of a create or update
type DocumentInput struct {
	Title       *string
	Description *string
	Type        *models.DocumentType
	ProjectID   *uint
	MemberID    *uint
}

func (in DocumentInput) apply(d *models.Document) {
	setTrimmed(&d.Title, in.Title)
	setText(&d.Description, in.Description)
	set(&d.Type, in.Type)
	setRef(&d.ProjectID, in.ProjectID)
	setRef(&d.MemberID, in.MemberID)
}

// Upload describes a file sent for a document
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Document handles documents and their stored content
type Document struct {
	store      *repos.Store
	blobs      blob.Store
	presignTTL time.Duration
	contentURL func(uint) string
}

// NewDocumentService creates a new document service instance
func NewDocumentService(store *repos.Store, blobs blob.Store, presignTTL time.Duration, contentURL func(uint) string) *Document {
	if contentURL == nil {
		contentURL = func(id uint) string { return fmt.Sprintf("/api/v1/documents/%d/content", id) }
	}
	return &Document{store: store, blobs: blobs, presignTTL: presignTTL, contentURL: contentURL}
}

// Create creates a new document record without content
func (s *Document) Create(ctx context.Context, in DocumentInput) (*models.Document, error) {
	d := &models.Document{Type: models.DocumentTypeOther}
	if err := s.save(ctx, d, in, true); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies in to an existing document
func (s *Document) Update(ctx context.Context, id uint, in DocumentInput) (*models.Document, error) {
	d, err := s.store.Documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, d, in, false); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Document) save(ctx context.Context, d *models.Document, in DocumentInput, create bool) error {
	in.apply(d)
	err := validate(validation.ValidateStruct(d,
		validation.Field(&d.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&d.Type, validation.Required, oneOf(models.DocumentTypes)),
	))
	if err != nil {
		return err
	}
	if err := s.store.Projects.RequireIDs(ctx, optional(d.ProjectID)...); err != nil {
		return err
	}
	if err := s.store.Members.RequireIDs(ctx, optional(d.MemberID)...); err != nil {
		return err
	}
	if create {
		return s.store.Documents.Create(ctx, d)
	}
	return s.store.Documents.Update(ctx, d)
}

// Get retrieves a document by ID
func (s *Document) Get(ctx context.Context, id uint) (*models.Document, error) {
	return s.store.Documents.Get(ctx, id)
}

// List retrieves documents matching the filter
func (s *Document) List(ctx context.Context, f repos.DocumentFilter, opts *models.ListOptions) ([]models.Document, error) {
	return s.store.Documents.List(ctx, f, opts)
}

// Delete deletes a document and, best effort, its stored content
func (s *Document) Delete(ctx context.Context, id uint) error {
	d, err := s.store.Documents.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Documents.Delete(ctx, id); err != nil {
		return err
	}
	if d.HasContent() {
		s.removeBlob(ctx, *d.StorageKey)
	}
	return nil
}

// Upload stores file content for a document, replacing any previous content
func (s *Document) Upload(ctx context.Context, id uint, up Upload) (*models.Document, error) {
	d, err := s.store.Documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if up.Body == nil {
		return nil, domain.Invalidf("file is required")
	}
	key := blob.DocumentKey(id, up.FileName)
	info, err := s.blobs.Put(ctx, key, up.Body, blob.PutOptions{ContentType: up.ContentType})
	if err != nil {
		return nil, fmt.Errorf("store document content: %w", err)
	}
	size := info.Size
	if size == 0 {
		size = up.Size
	}
	if err := s.store.Documents.SetContent(ctx, id, key, up.FileName, up.ContentType, size); err != nil {
		s.removeBlob(ctx, key)
		return nil, err
	}
	if d.HasContent() {
		s.removeBlob(ctx, *d.StorageKey)
	}
	logger.InfoWithFields("document content uploaded", map[string]interface{}{
		"document_id": id,
		"size":        size,
		"driver":      s.blobs.Driver(),
	})
	return s.store.Documents.Get(ctx, id)
}

// Content opens the stored file of a document
func (s *Document) Content(ctx context.Context, id uint) (*models.Document, io.ReadCloser, error) {
	d, err := s.store.Documents.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !d.HasContent() {
		return nil, nil, fmt.Errorf("document %d has no content: %w", id, domain.ErrNotFound)
	}
	_, body, err := s.blobs.Get(ctx, *d.StorageKey)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, nil, fmt.Errorf("document %d content: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	return d, body, nil
}

// PresignedURL returns a direct download URL when the blob store supports it
func (s *Document) PresignedURL(ctx context.Context, d *models.Document) (string, bool, error) {
	if !d.HasContent() {
		return "", false, nil
	}
	url, err := s.blobs.PresignURL(ctx, *d.StorageKey, s.presignTTL)
	if errors.Is(err, blob.ErrUnsupported) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

// DownloadURL returns where a client can fetch the document content, or nil without content
func (s *Document) DownloadURL(ctx context.Context, d *models.Document) (*string, error) {
	if !d.HasContent() {
		return nil, nil
	}
	url, ok, err := s.PresignedURL(ctx, d)
	if err != nil {
		return nil, err
	}
	if !ok {
		url = s.contentURL(d.ID)
	}
	return &url, nil
}

func (s *Document) removeBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil && !errors.Is(err, blob.ErrNotFound) {
		logger.WarnWithFields("failed to delete document content", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
