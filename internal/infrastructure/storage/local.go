package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcos-nsantos/image-variants/internal/domain"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// LocalStorage keeps uploads on the local filesystem. publicURL serves the
// directory root; files written elsewhere are addressed by their path.
type LocalStorage struct {
	root      string
	publicURL string
}

func NewLocalStorage(root, publicURL string) *LocalStorage {
	return &LocalStorage{
		root:      filepath.Clean(root),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Move renames srcPath into dir. When a rename is not possible, e.g. the
// temp directory is on another device, the file is copied and the source
// removed.
func (s *LocalStorage) Move(ctx context.Context, srcPath, dir, name string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: creating %s: %v", domain.ErrStorage, dir, err)
	}

	dst := filepath.Join(dir, name)
	if err := os.Rename(srcPath, dst); err == nil {
		return nil
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", domain.ErrStorage, srcPath, err)
	}
	defer src.Close()

	if err := writeFile(dst, src); err != nil {
		return err
	}

	if err := os.Remove(srcPath); err != nil {
		return fmt.Errorf("%w: removing %s: %v", domain.ErrStorage, srcPath, err)
	}
	return nil
}

func (s *LocalStorage) Save(ctx context.Context, dir, name string, reader io.Reader, contentType string, size int64) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: creating %s: %v", domain.ErrStorage, dir, err)
	}
	return writeFile(filepath.Join(dir, name), reader)
}

func (s *LocalStorage) URL(dir, name string) string {
	file := filepath.Join(dir, name)
	if s.publicURL == "" {
		return filepath.ToSlash(file)
	}

	rel, err := filepath.Rel(s.root, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(file)
	}
	return s.publicURL + "/" + filepath.ToSlash(rel)
}

func writeFile(dst string, reader io.Reader) error {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", domain.ErrStorage, dst, err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("%w: writing %s: %v", domain.ErrStorage, dst, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("%w: closing %s: %v", domain.ErrStorage, dst, err)
	}
	return nil
}
