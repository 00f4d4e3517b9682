package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FSStore keeps blobs as files under a root directory. A ".meta" sidecar
// next to each file records its content type.
type FSStore struct {
	root string
}

type fsMeta struct {
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewFSStore returns a store rooted at root, creating it if needed
func NewFSStore(root string) (*FSStore, error) {
	if root == "" {
		root = "./data/blobs"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{root: root}, nil
}

// Driver implements Store
func (s *FSStore) Driver() Driver { return DriverFilesystem }

func (s *FSStore) pathFor(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("empty key")
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

// Put implements Store. The file is written to a temp file and renamed into place.
func (s *FSStore) Put(_ context.Context, key string, r io.Reader, opts PutOptions) (Info, error) {
	dataPath, err := s.pathFor(key)
	if err != nil {
		return Info{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return Info{}, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dataPath), ".tmp-*")
	if err != nil {
		return Info{}, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	size, err := io.Copy(tmp, r)
	if err != nil {
		_ = tmp.Close()
		return Info{}, err
	}
	if err := tmp.Close(); err != nil {
		return Info{}, err
	}
	if err := os.Rename(tmp.Name(), dataPath); err != nil {
		return Info{}, err
	}

	meta := fsMeta{ContentType: opts.ContentType, Size: size, UpdatedAt: time.Now().UTC()}
	raw, err := json.Marshal(meta)
	if err != nil {
		return Info{}, err
	}
	if err := os.WriteFile(dataPath+".meta", raw, 0o644); err != nil {
		return Info{}, err
	}
	return meta.info(key), nil
}

// Get implements Store
func (s *FSStore) Get(ctx context.Context, key string) (Info, io.ReadCloser, error) {
	info, err := s.Head(ctx, key)
	if err != nil {
		return Info{}, nil, err
	}
	dataPath, _ := s.pathFor(key)
	f, err := os.Open(dataPath)
	if err != nil {
		return Info{}, nil, mapFSError(err)
	}
	return info, f, nil
}

// Head implements Store
func (s *FSStore) Head(_ context.Context, key string) (Info, error) {
	dataPath, err := s.pathFor(key)
	if err != nil {
		return Info{}, err
	}
	stat, err := os.Stat(dataPath)
	if err != nil {
		return Info{}, mapFSError(err)
	}
	meta := fsMeta{Size: stat.Size(), UpdatedAt: stat.ModTime().UTC()}
	if raw, err := os.ReadFile(dataPath + ".meta"); err == nil {
		_ = json.Unmarshal(raw, &meta)
	}
	return meta.info(key), nil
}

// Delete implements Store
func (s *FSStore) Delete(_ context.Context, key string) error {
	dataPath, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dataPath); err != nil {
		return mapFSError(err)
	}
	_ = os.Remove(dataPath + ".meta")
	return nil
}

// PresignURL implements Store. Files are served by the API instead.
func (s *FSStore) PresignURL(context.Context, string, time.Duration) (string, error) {
	return "", ErrUnsupported
}

func (m fsMeta) info(key string) Info {
	return Info{Key: key, Size: m.Size, ContentType: m.ContentType, LastModified: m.UpdatedAt}
}

func mapFSError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
