package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/image-variants/internal/domain"
	"github.com/marcos-nsantos/image-variants/internal/domain/entity"
)

type VariantSetRepo struct {
	pool *pgxpool.Pool
}

func NewVariantSetRepo(pool *pgxpool.Pool) *VariantSetRepo {
	return &VariantSetRepo{pool: pool}
}

func (r *VariantSetRepo) Create(ctx context.Context, set *entity.VariantSet) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO variant_sets (id, original_name, token, base_name, upload_path, resize_mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.Exec(ctx, query,
		set.ID, set.OriginalName, set.Token, set.BaseName,
		set.UploadPath, set.ResizeMode, set.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting variant set: %w", err)
	}

	batch := &pgx.Batch{}
	for i, v := range set.Variants {
		batch.Queue(`
			INSERT INTO variants (set_id, position, label, file_name, width, height)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, set.ID, i, v.Label, v.FileName, v.Width, v.Height)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting variants: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing variant set: %w", err)
	}
	return nil
}

func (r *VariantSetRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.VariantSet, error) {
	query := `
		SELECT id, original_name, token, base_name, upload_path, resize_mode, created_at
		FROM variant_sets
		WHERE id = $1
	`
	var set entity.VariantSet
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&set.ID, &set.OriginalName, &set.Token, &set.BaseName,
		&set.UploadPath, &set.ResizeMode, &set.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVariantSetNotFound
		}
		return nil, fmt.Errorf("querying variant set: %w", err)
	}

	variants, err := r.getVariants(ctx, id)
	if err != nil {
		return nil, err
	}
	set.Variants = variants

	return &set, nil
}

func (r *VariantSetRepo) getVariants(ctx context.Context, setID uuid.UUID) ([]entity.Variant, error) {
	query := `
		SELECT label, file_name, width, height
		FROM variants
		WHERE set_id = $1
		ORDER BY position ASC
	`
	rows, err := r.pool.Query(ctx, query, setID)
	if err != nil {
		return nil, fmt.Errorf("querying variants: %w", err)
	}
	defer rows.Close()

	var variants []entity.Variant
	for rows.Next() {
		var v entity.Variant
		if err := rows.Scan(&v.Label, &v.FileName, &v.Width, &v.Height); err != nil {
			return nil, fmt.Errorf("scanning variant: %w", err)
		}
		variants = append(variants, v)
	}

	return variants, rows.Err()
}
