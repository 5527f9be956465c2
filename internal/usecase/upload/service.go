package upload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-variants/internal/adapter/repository"
	"github.com/marcos-nsantos/image-variants/internal/adapter/storage"
	"github.com/marcos-nsantos/image-variants/internal/domain"
	"github.com/marcos-nsantos/image-variants/internal/domain/entity"
	"github.com/marcos-nsantos/image-variants/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-variants/internal/pkg/naming"
)

var DefaultExtensions = []string{"jpg", "jpeg", "png", "gif"}

type Service struct {
	storage     storage.FileStorage
	processor   storage.ImageProcessor
	variantRepo repository.VariantSetRepository
	metrics     observability.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewService wires the upload use case. variantRepo may be nil, in which
// case uploads are not recorded.
func NewService(
	fileStorage storage.FileStorage,
	processor storage.ImageProcessor,
	variantRepo repository.VariantSetRepository,
	metrics observability.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		storage:     fileStorage,
		processor:   processor,
		variantRepo: variantRepo,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

type UploadInput struct {
	OriginalName string
	SourcePath   string
}

// Options configures a single upload call.
type Options struct {
	// UniqueToken overrides the generated token appended to every name.
	UniqueToken string
	// Dimensions lists "WxH" sizes. Empty means store the file as is.
	Dimensions []string
	// UploadPath is the destination directory.
	UploadPath string
	// Extensions lists the extensions that may be resized.
	Extensions []string
	Resize     valueobject.ResizeMode
}

type UploadResult struct {
	// Files maps each requested dimension label to the stored file name.
	// A file stored without resizing is under the empty label.
	Files map[string]string
	URLs  map[string]string
	// Order lists the labels of Files in the order they were written.
	Order      []string
	Variants   []entity.Variant
	Token      string
	BaseName   string
	VariantSet *entity.VariantSet
}

func (s *Service) Upload(ctx context.Context, input UploadInput, opts Options) (*UploadResult, error) {
	if strings.TrimSpace(input.OriginalName) == "" || input.SourcePath == "" {
		return nil, fmt.Errorf("%w: file name and source path are required", domain.ErrInvalidRequest)
	}

	dims, err := valueobject.ParseDimensions(opts.Dimensions)
	if err != nil {
		return nil, err
	}
	dims = lo.UniqBy(dims, func(d valueobject.Dimension) string { return d.Label })

	mode, err := valueobject.ParseResizeMode(string(opts.Resize))
	if err != nil {
		return nil, err
	}

	namer := naming.NewNamer(naming.Token(opts.UniqueToken, s.now()))
	ext := naming.Extension(input.OriginalName)
	attrs := map[string]string{"extension": ext, "mode": mode.String()}

	s.metrics.Increment(ctx, observability.UploadReceived, attrs)

	var variants []entity.Variant
	if len(dims) == 0 {
		variants, err = s.relocate(ctx, input, opts.UploadPath, namer)
	} else {
		variants, err = s.resize(ctx, input, opts, dims, mode, namer)
	}
	if err != nil {
		s.metrics.Increment(ctx, observability.UploadFailed, attrs)
		return nil, err
	}

	result := &UploadResult{
		Files:    make(map[string]string, len(variants)),
		URLs:     make(map[string]string, len(variants)),
		Order:    make([]string, 0, len(variants)),
		Variants: variants,
		Token:    namer.Token(),
		BaseName: namer.BaseName(input.OriginalName),
	}
	for _, v := range variants {
		result.Files[v.Label] = v.FileName
		result.URLs[v.Label] = s.storage.URL(opts.UploadPath, v.FileName)
		result.Order = append(result.Order, v.Label)
	}

	if s.variantRepo != nil {
		set := entity.NewVariantSet(input.OriginalName, result.Token, result.BaseName, opts.UploadPath, string(mode), variants)
		if err := s.variantRepo.Create(ctx, set); err != nil {
			// the files are already stored; report them without a record
			s.logger.Error("recording variant set failed",
				zap.String("token", result.Token),
				zap.Strings("files", lo.Values(result.Files)),
				zap.Error(err),
			)
		} else {
			result.VariantSet = set
		}
	}

	return result, nil
}

func (s *Service) GetVariantSet(ctx context.Context, id string) (*entity.VariantSet, error) {
	if s.variantRepo == nil {
		return nil, domain.ErrVariantSetNotFound
	}

	setID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.variantRepo.GetByID(ctx, setID)
}

func parseID(id string) (uuid.UUID, error) {
	setID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid variant set id", domain.ErrInvalidRequest)
	}
	return setID, nil
}

func (s *Service) relocate(ctx context.Context, input UploadInput, dir string, namer *naming.Namer) ([]entity.Variant, error) {
	name := namer.Name(input.OriginalName, 0)

	if err := s.storage.Move(ctx, input.SourcePath, dir, name); err != nil {
		return nil, fmt.Errorf("moving %s: %w", input.OriginalName, err)
	}

	s.metrics.Increment(ctx, observability.FileRelocated, map[string]string{"extension": naming.Extension(name)})
	s.logger.Debug("file stored", zap.String("file", name), zap.String("dir", dir))

	return []entity.Variant{{Label: "", FileName: name}}, nil
}

func (s *Service) resize(
	ctx context.Context,
	input UploadInput,
	opts Options,
	dims []valueobject.Dimension,
	mode valueobject.ResizeMode,
	namer *naming.Namer,
) ([]entity.Variant, error) {
	ext := naming.Extension(input.OriginalName)
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if !lo.Contains(extensions, ext) || !s.processor.Supports(ext) {
		return nil, fmt.Errorf("%w: %q cannot be resized", domain.ErrUnsupportedFormat, ext)
	}

	img, err := s.decode(input.SourcePath, ext)
	if err != nil {
		return nil, err
	}

	for _, dim := range dims {
		if err := s.processor.Validate(img, dim, mode); err != nil {
			return nil, err
		}
	}

	variants := make([]entity.Variant, 0, len(dims))
	written := make([]string, 0, len(dims))
	for _, dim := range dims {
		variant, stage, err := s.writeVariant(ctx, img, dim, mode, namer, input.OriginalName, ext, opts.UploadPath)
		if err != nil {
			return nil, &domain.VariantError{Label: dim.Label, Stage: stage, Written: written, Err: err}
		}

		written = append(written, variant.FileName)
		variants = append(variants, variant)

		s.metrics.Increment(ctx, observability.VariantCreated, map[string]string{
			"extension": ext,
			"mode":      mode.String(),
		})
		s.logger.Debug("variant written",
			zap.String("label", dim.Label),
			zap.String("file", variant.FileName),
			zap.Int("width", variant.Width),
			zap.Int("height", variant.Height),
		)
	}

	return variants, nil
}

func (s *Service) decode(path, ext string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening source: %v", domain.ErrStorage, err)
	}
	defer f.Close()

	return s.processor.Decode(f, ext)
}

// writeVariant resizes, encodes and stores one variant. The resized buffer
// is only referenced inside this call.
func (s *Service) writeVariant(
	ctx context.Context,
	img image.Image,
	dim valueobject.Dimension,
	mode valueobject.ResizeMode,
	namer *naming.Namer,
	originalName, ext, dir string,
) (entity.Variant, string, error) {
	resized, err := s.processor.Resize(img, dim, mode)
	if err != nil {
		return entity.Variant{}, domain.StageResize, err
	}
	bounds := resized.Bounds()

	var buf bytes.Buffer
	if err := s.processor.Encode(&buf, resized, ext); err != nil {
		return entity.Variant{}, domain.StageEncode, err
	}

	// Height-only requests such as "0x300" carry no width; the output width
	// keeps their names apart.
	nameWidth := dim.Width
	if nameWidth == 0 {
		nameWidth = bounds.Dx()
	}
	name := namer.Name(originalName, nameWidth)

	size := int64(buf.Len())
	if err := s.storage.Save(ctx, dir, name, bytes.NewReader(buf.Bytes()), s.processor.ContentType(ext), size); err != nil {
		return entity.Variant{}, domain.StageWrite, err
	}

	return entity.Variant{
		Label:    dim.Label,
		FileName: name,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, "", nil
}
