package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack/internal/services"
)

// DocumentHandler transfers document content
type DocumentHandler struct {
	*APIHandler
}

// NewDocumentHandler creates a new DocumentHandler instance
func NewDocumentHandler(api *APIHandler) *DocumentHandler {
	return &DocumentHandler{
		APIHandler: api,
	}
}

// UploadContent stores the multipart field "file" as the content of a document,
// replacing any previous content. It responds with the updated document.
func (h *DocumentHandler) UploadContent(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return respondWithMessage(c, fiber.StatusBadRequest, ErrMsgInvalidDocumentID)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return respondWithMessage(c, fiber.StatusBadRequest, ErrMsgFileRequired)
	}
	f, err := fh.Open()
	if err != nil {
		return respondWithMessage(c, fiber.StatusBadRequest, ErrMsgFileUnreadable)
	}
	defer f.Close()

	doc, err := h.documents.Upload(c.UserContext(), id, services.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return respondWithError(c, err)
	}
	return c.JSON(doc)
}

// DownloadContent redirects to a presigned URL when the blob store issues
// them and streams the content otherwise
func (h *DocumentHandler) DownloadContent(c *fiber.Ctx) error {
	id, err := documentID(c)
	if err != nil {
		return respondWithMessage(c, fiber.StatusBadRequest, ErrMsgInvalidDocumentID)
	}
	ctx := c.UserContext()

	doc, err := h.documents.Get(ctx, id)
	if err != nil {
		return respondWithError(c, err)
	}
	url, ok, err := h.documents.PresignedURL(ctx, doc)
	if err != nil {
		return respondWithError(c, err)
	}
	if ok {
		return c.Redirect(url, fiber.StatusFound)
	}

	doc, body, err := h.documents.Content(ctx, id)
	if err != nil {
		return respondWithError(c, err)
	}
	contentType := fiber.MIMEOctetStream
	if doc.ContentType != nil && *doc.ContentType != "" {
		contentType = *doc.ContentType
	}
	c.Set(fiber.HeaderContentType, contentType)
	if doc.FileName != nil {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", *doc.FileName))
	}
	// fasthttp closes body once it has been written
	return c.SendStream(body, int(doc.Size))
}

func documentID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}
