// Package blob stores document contents behind a small S3-like interface
// with filesystem, in-memory and S3 drivers.
package blob

import (
	"context"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Driver identifies a blob storage backend
type Driver string

const (
	// DriverFilesystem stores blobs under a local directory
	DriverFilesystem Driver = "fs"
	// DriverMemory keeps blobs in process memory
	DriverMemory Driver = "memory"
	// DriverS3 stores blobs in an S3 compatible bucket
	DriverS3 Driver = "s3"
)

var (
	// ErrNotFound is returned when a key does not exist
	ErrNotFound = errors.New("blob: not found")
	// ErrUnsupported is returned when a driver lacks an optional capability
	ErrUnsupported = errors.New("blob: unsupported operation")
)

// PutOptions specifies optional parameters for Put
type PutOptions struct {
	ContentType string
}

// Info describes a stored blob
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Store is implemented by every driver
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	Head(ctx context.Context, key string) (Info, error)
	Delete(ctx context.Context, key string) error
	// PresignURL returns a time-limited download URL, or ErrUnsupported
	PresignURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Driver() Driver
}

// DocumentKey builds a fresh storage key for a document upload
func DocumentKey(documentID uint, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "content"
	}
	return path.Join("documents", strconv.FormatUint(uint64(documentID), 10), uuid.NewString(), name)
}
