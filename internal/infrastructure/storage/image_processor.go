package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	"github.com/marcos-nsantos/image-variants/internal/domain"
	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
)

const (
	JPEGQuality = 100

	// MaxSide bounds either side of a variant. Width and height modes may
	// upscale, so the requested side alone decides the buffer size.
	MaxSide = 8192

	// MaxSourcePixels bounds the decoded source image.
	MaxSourcePixels = 50_000_000
)

var formats = map[string]imaging.Format{
	"jpg":  imaging.JPEG,
	"jpeg": imaging.JPEG,
	"png":  imaging.PNG,
	"gif":  imaging.GIF,
}

var contentTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
}

type ImageProcessorImpl struct {
	quality int
	maxSide int
}

type ProcessorOption func(*ImageProcessorImpl)

// WithMaxSide lowers the largest side a variant may have. Values outside
// 1..MaxSide keep MaxSide.
func WithMaxSide(n int) ProcessorOption {
	return func(p *ImageProcessorImpl) {
		if n > 0 && n < MaxSide {
			p.maxSide = n
		}
	}
}

func NewImageProcessor(opts ...ProcessorOption) *ImageProcessorImpl {
	p := &ImageProcessorImpl{quality: JPEGQuality, maxSide: MaxSide}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ImageProcessorImpl) Supports(ext string) bool {
	_, ok := formats[ext]
	return ok
}

// Decode reads the whole source and decodes it as the format named by ext.
// Content that sniffs as a different image format is rejected, as is any
// image with a zero side.
func (p *ImageProcessorImpl) Decode(reader io.Reader, ext string) (image.Image, error) {
	format, ok := formats[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading source: %v", domain.ErrDecode, err)
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, fmt.Errorf("%w: content is not a recognized image", domain.ErrDecode)
	}
	if sniffed, ok := formats[kind.Extension]; !ok || sniffed != format {
		return nil, fmt.Errorf("%w: content is %s, extension is %s", domain.ErrDecode, kind.Extension, ext)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, fmt.Errorf("%w: image of %dx%d exceeds %d pixels", domain.ErrDecode, cfg.Width, cfg.Height, MaxSourcePixels)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: image has zero size %dx%d", domain.ErrDecode, bounds.Dx(), bounds.Dy())
	}

	return img, nil
}

// Validate reports whether dim can be produced from img in mode without
// allocating anything. A variant larger than its source may not have a side
// above the processor's max side.
func (p *ImageProcessorImpl) Validate(img image.Image, dim valueobject.Dimension, mode valueobject.ResizeMode) error {
	_, _, err := p.targetSize(img.Bounds(), dim, mode)
	return err
}

// Resize returns a new true-color image sized by TargetSize. The box filter
// averages every source pixel that falls inside a destination pixel.
func (p *ImageProcessorImpl) Resize(img image.Image, dim valueobject.Dimension, mode valueobject.ResizeMode) (image.Image, error) {
	width, height, err := p.targetSize(img.Bounds(), dim, mode)
	if err != nil {
		return nil, err
	}

	return imaging.Resize(img, width, height, imaging.Box), nil
}

func (p *ImageProcessorImpl) targetSize(bounds image.Rectangle, dim valueobject.Dimension, mode valueobject.ResizeMode) (int, int, error) {
	width, height, err := TargetSize(bounds.Dx(), bounds.Dy(), dim, mode)
	if err != nil {
		return 0, 0, err
	}

	grows := width > bounds.Dx() || height > bounds.Dy()
	if grows && (width > p.maxSide || height > p.maxSide) {
		return 0, 0, fmt.Errorf("%w: %q gives %dx%d, larger than %d", domain.ErrInvalidDimension, dim.Label, width, height, p.maxSide)
	}
	return width, height, nil
}

func (p *ImageProcessorImpl) Encode(writer io.Writer, img image.Image, ext string) error {
	format, ok := formats[ext]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}

	if err := imaging.Encode(writer, img, format, imaging.JPEGQuality(p.quality)); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrEncode, format, err)
	}
	return nil
}

func (p *ImageProcessorImpl) ContentType(ext string) string {
	return ContentType(ext)
}

// ContentType returns the MIME type written for an image extension, or
// application/octet-stream for anything else.
func ContentType(ext string) string {
	if format, ok := formats[ext]; ok {
		return contentTypes[format]
	}
	return "application/octet-stream"
}

// TargetSize computes the output size of a variant.
//
// Width and height modes force one side and derive the other from the aspect
// ratio, rounding to the nearest pixel. Both mode fits the image inside the
// requested box and never upscales: when the image already fits, its natural
// size is returned unchanged. Width and height modes reject a result with a
// side above MaxSide as an invalid dimension.
func TargetSize(naturalWidth, naturalHeight int, dim valueobject.Dimension, mode valueobject.ResizeMode) (int, int, error) {
	if naturalWidth <= 0 || naturalHeight <= 0 {
		return 0, 0, fmt.Errorf("%w: image has zero size %dx%d", domain.ErrDecode, naturalWidth, naturalHeight)
	}

	switch mode {
	case valueobject.ResizeWidth:
		if dim.Width <= 0 {
			return 0, 0, fmt.Errorf("%w: %q needs a width", domain.ErrInvalidDimension, dim.Label)
		}
		height := math.Round(float64(naturalHeight) * float64(dim.Width) / float64(naturalWidth))
		return bounded(dim, float64(dim.Width), height)

	case valueobject.ResizeHeight:
		if dim.Height <= 0 {
			return 0, 0, fmt.Errorf("%w: %q needs a height", domain.ErrInvalidDimension, dim.Label)
		}
		width := math.Round(float64(naturalWidth) * float64(dim.Height) / float64(naturalHeight))
		return bounded(dim, width, float64(dim.Height))

	case valueobject.ResizeBoth:
		if dim.Width <= 0 || dim.Height <= 0 {
			return 0, 0, fmt.Errorf("%w: %q needs width and height", domain.ErrInvalidDimension, dim.Label)
		}
		// scale = min(dim.Width/naturalWidth, dim.Height/naturalHeight)
		if dim.Width >= naturalWidth && dim.Height >= naturalHeight {
			return naturalWidth, naturalHeight, nil
		}
		if int64(dim.Width)*int64(naturalHeight) <= int64(dim.Height)*int64(naturalWidth) {
			return dim.Width, atLeastOne(floorScale(naturalHeight, dim.Width, naturalWidth)), nil
		}
		return atLeastOne(floorScale(naturalWidth, dim.Height, naturalHeight)), dim.Height, nil

	default:
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidResizeMode, mode)
	}
}

// floorScale returns floor(side * num / den) without float rounding.
func floorScale(side, num, den int) int {
	return int(int64(side) * int64(num) / int64(den))
}

// bounded clamps each side to at least one pixel and rejects sides above
// MaxSide before they are converted to int.
func bounded(dim valueobject.Dimension, width, height float64) (int, int, error) {
	if width > MaxSide || height > MaxSide {
		return 0, 0, fmt.Errorf("%w: %q gives %.0fx%.0f, larger than %d", domain.ErrInvalidDimension, dim.Label, width, height, MaxSide)
	}
	return atLeastOne(int(width)), atLeastOne(int(height)), nil
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
