package services

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/domain"
)

type DocumentServiceTestSuite struct {
	ServiceTestSuite
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func (s *DocumentServiceTestSuite) document() *models.Document {
	d, err := s.svc.Documents.Create(s.ctx, DocumentInput{Title: ptr("Lab handbook")})
	s.Require().NoError(err)
	return d
}

func (s *DocumentServiceTestSuite) upload(id uint, body string) *models.Document {
	d, err := s.svc.Documents.Upload(s.ctx, id, Upload{
		FileName:    "handbook.txt",
		ContentType: "text/plain",
		Body:        strings.NewReader(body),
	})
	s.Require().NoError(err)
	return d
}

func (s *DocumentServiceTestSuite) TestCreateDefaultsType() {
	d := s.document()
	s.Equal(models.DocumentTypeOther, d.Type)
	s.False(d.HasContent())

	url, err := s.svc.Documents.DownloadURL(s.ctx, d)
	s.Require().NoError(err)
	s.Nil(url)
}

func (s *DocumentServiceTestSuite) TestUploadAndDownload() {
	d := s.upload(s.document().ID, "hello lab")
	s.Require().True(d.HasContent())
	s.Equal(int64(9), d.Size)
	s.Equal("handbook.txt", *d.FileName)

	_, body, err := s.svc.Documents.Content(s.ctx, d.ID)
	s.Require().NoError(err)
	defer body.Close()
	data, err := io.ReadAll(body)
	s.Require().NoError(err)
	s.Equal("hello lab", string(data))

	url, err := s.svc.Documents.DownloadURL(s.ctx, d)
	s.Require().NoError(err)
	s.Equal("/api/v1/documents/1/content", *url)
}

func (s *DocumentServiceTestSuite) TestReuploadRemovesOldContent() {
	d := s.document()
	first := *s.upload(d.ID, "v1").StorageKey
	second := *s.upload(d.ID, "v2").StorageKey
	s.NotEqual(first, second)

	_, err := s.blobs.Head(s.ctx, first)
	s.Error(err)
	_, err = s.blobs.Head(s.ctx, second)
	s.NoError(err)
}

func (s *DocumentServiceTestSuite) TestContentMissing() {
	d := s.document()
	_, _, err := s.svc.Documents.Content(s.ctx, d.ID)
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.svc.Documents.Upload(s.ctx, d.ID, Upload{FileName: "x"})
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *DocumentServiceTestSuite) TestDeleteRemovesContent() {
	d := s.upload(s.document().ID, "bye")
	s.Require().NoError(s.svc.Documents.Delete(s.ctx, d.ID))

	_, err := s.blobs.Head(s.ctx, *d.StorageKey)
	s.Error(err)
	_, err = s.svc.Documents.Get(s.ctx, d.ID)
	s.ErrorIs(err, domain.ErrNotFound)
}
