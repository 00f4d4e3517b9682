package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/blob"
	"github.com/labtrack/labtrack/internal/db/dbtest"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/services"
)

type DocumentHandlerTestSuite struct {
	suite.Suite
	app *fiber.App
	svc *services.Services
}

func TestDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}

func (s *DocumentHandlerTestSuite) SetupTest() {
	conn := dbtest.Open(s.T())
	s.svc = services.New(conn, services.Options{Blob: blob.NewMemoryStore()})

	api := NewAPIHandler(s.svc.Documents, conn)
	docs := NewDocumentHandler(api)
	s.app = fiber.New()
	s.app.Get("/health", NewHealthHandler(api).Check)
	s.app.Get("/documents/:id/content", docs.DownloadContent)
	s.app.Put("/documents/:id/content", docs.UploadContent)
}

func (s *DocumentHandlerTestSuite) upload(path, fileName string, content []byte) *http.Response {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	return resp
}

func (s *DocumentHandlerTestSuite) decodeError(resp *http.Response) ErrorResponse {
	defer resp.Body.Close()
	var out ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *DocumentHandlerTestSuite) TestUploadAndDownload() {
	title := "Lab handbook"
	doc, err := s.svc.Documents.Create(context.Background(), services.DocumentInput{Title: &title})
	s.Require().NoError(err)

	resp := s.upload("/documents/1/content", "handbook.txt", []byte("safety first"))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var updated models.Document
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	s.Equal(doc.ID, updated.ID)
	s.Equal(int64(len("safety first")), updated.Size)
	s.Require().NotNil(updated.FileName)
	s.Equal("handbook.txt", *updated.FileName)

	resp, err = s.app.Test(httptest.NewRequest(http.MethodGet, "/documents/1/content", nil))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get(fiber.HeaderContentDisposition), "handbook.txt")
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal("safety first", string(body))
}

func (s *DocumentHandlerTestSuite) TestErrors() {
	resp := s.upload("/documents/7/content", "x.txt", []byte("x"))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("NOT_FOUND", s.decodeError(resp).Code)

	resp = s.upload("/documents/abc/content", "x.txt", []byte("x"))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(ErrMsgInvalidDocumentID, s.decodeError(resp).Error)

	title := "Empty"
	_, err := s.svc.Documents.Create(context.Background(), services.DocumentInput{Title: &title})
	s.Require().NoError(err)

	resp, err = s.app.Test(httptest.NewRequest(http.MethodPut, "/documents/1/content", nil))
	s.Require().NoError(err)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(ErrMsgFileRequired, s.decodeError(resp).Error)

	resp, err = s.app.Test(httptest.NewRequest(http.MethodGet, "/documents/1/content", nil))
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *DocumentHandlerTestSuite) TestHealth() {
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.JSONEq(`{"status":"healthy"}`, string(body))
}

func TestStatusFor(t *testing.T) {
	cases := map[string]int{
		"NOT_FOUND":       http.StatusNotFound,
		"VALIDATION":      http.StatusBadRequest,
		"CONFLICT":        http.StatusConflict,
		"UNAUTHENTICATED": http.StatusUnauthorized,
		"FORBIDDEN":       http.StatusForbidden,
		"INTERNAL":        http.StatusInternalServerError,
	}
	for code, status := range cases {
		if got := StatusFor(code); got != status {
			t.Errorf("StatusFor(%s) = %d, want %d", code, got, status)
		}
		if got := CodeFor(status); got != code {
			t.Errorf("CodeFor(%d) = %s, want %s", status, got, code)
		}
	}
	if got := CodeFor(http.StatusRequestEntityTooLarge); got != "VALIDATION" {
		t.Errorf("CodeFor(413) = %s, want VALIDATION", got)
	}
}
