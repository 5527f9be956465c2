package storage

import (
	"context"
	"image"
	"io"

	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// FileStorage writes upload results under a destination directory. dir is
// the configured upload path and name a generated file name.
type FileStorage interface {
	Move(ctx context.Context, srcPath, dir, name string) error
	Save(ctx context.Context, dir, name string, reader io.Reader, contentType string, size int64) error
	URL(dir, name string) string
}

type ImageProcessor interface {
	Supports(ext string) bool
	ContentType(ext string) string
	Decode(reader io.Reader, ext string) (image.Image, error)
	Validate(img image.Image, dim valueobject.Dimension, mode valueobject.ResizeMode) error
	Resize(img image.Image, dim valueobject.Dimension, mode valueobject.ResizeMode) (image.Image, error)
	Encode(writer io.Writer, img image.Image, ext string) error
}
