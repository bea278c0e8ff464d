package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FileStore persists uploaded media and hands back a relative path that is
// stored on the owning row.
type FileStore interface {
	Save(dir string, ext string, r io.Reader) (string, error)
	Remove(path string) error
}

type diskStore struct {
	root string
}

func NewDiskStore(root string) (*diskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "media root")
	}
	return &diskStore{root: root}, nil
}

func (s *diskStore) Save(dir string, ext string, r io.Reader) (string, error) {
	rel := filepath.Join(dir, fmt.Sprintf("%s%s", uuid.New().String(), ext))
	abs := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", errors.Wrap(err, "media dir")
	}
	f, err := os.Create(abs)
	if err != nil {
		return "", errors.Wrap(err, "media create")
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", errors.Wrap(err, "media write")
	}
	return rel, nil
}

func (s *diskStore) Remove(path string) error {
	return os.Remove(filepath.Join(s.root, path))
}
