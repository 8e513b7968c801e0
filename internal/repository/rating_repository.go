package repository

import (
	"context"
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// FindByRespondent returns the rows in store order. The identifier is bound
// as given so the database handles the type conversion.
func (r *RatingRepository) FindByRespondent(ctx context.Context, respondent string) ([]model.Rating, error) {
	rows := []model.Rating{}
	err := r.DB.WithContext(ctx).
		Raw("SELECT * FROM ratings WHERE respondent_identifier = ?", respondent).
		Scan(&rows).Error
	return rows, err
}

func (r *RatingRepository) Create(ctx context.Context, rating *model.Rating) error {
	return r.DB.WithContext(ctx).Create(rating).Error
}

// CourseNamesByRespondent lists the distinct course names a user rated.
func (r *RatingRepository) CourseNamesByRespondent(ctx context.Context, respondent uint) ([]string, error) {
	var names []string
	err := r.DB.WithContext(ctx).
		Model(&model.Rating{}).
		Where("respondent_identifier = ?", respondent).
		Distinct().
		Pluck("course_name", &names).Error
	return names, err
}
