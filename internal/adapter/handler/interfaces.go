package handler

import (
	"context"

	"github.com/marcos-nsantos/image-variants/internal/domain/entity"
	"github.com/marcos-nsantos/image-variants/internal/usecase/render"
	"github.com/marcos-nsantos/image-variants/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type UploadService interface {
	Upload(ctx context.Context, input upload.UploadInput, opts upload.Options) (*upload.UploadResult, error)
	GetVariantSet(ctx context.Context, id string) (*entity.VariantSet, error)
}

type RenderService interface {
	ImageAttributes(input render.ImageInput) map[string]string
}
