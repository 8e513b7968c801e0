package repository

import (
	"context"
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type SavedAnswerRepository struct {
	DB *gorm.DB
}

func NewSavedAnswerRepository(db *gorm.DB) *SavedAnswerRepository {
	return &SavedAnswerRepository{DB: db}
}

func (r *SavedAnswerRepository) FindByUser(ctx context.Context, userID string) ([]model.SavedAnswer, error) {
	rows := []model.SavedAnswer{}
	err := r.DB.WithContext(ctx).
		Raw("SELECT * FROM saved_answer WHERE id_user = ?", userID).
		Scan(&rows).Error
	return rows, err
}

func (r *SavedAnswerRepository) Create(ctx context.Context, answer *model.SavedAnswer) error {
	return r.DB.WithContext(ctx).Create(answer).Error
}
