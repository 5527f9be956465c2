package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-variants/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type VariantSetRepository interface {
	Create(ctx context.Context, set *entity.VariantSet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VariantSet, error)
}
