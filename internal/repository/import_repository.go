package repository

import (
	"context"

	"gorm.io/gorm"
)

type ImportRepository struct {
	DB *gorm.DB
}

func NewImportRepository(db *gorm.DB) *ImportRepository {
	return &ImportRepository{DB: db}
}

// CreateInBatches inserts imported rows. rows must be a pointer to a slice of models.
func (r *ImportRepository) CreateInBatches(ctx context.Context, rows interface{}, batchSize int) error {
	return r.DB.WithContext(ctx).CreateInBatches(rows, batchSize).Error
}
