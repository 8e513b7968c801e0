package repository

import (
	"context"
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

// AssessmentRepository reads the question bank. Writes belong to the
// content management side.
type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) ListQuestions(ctx context.Context, learningPath string) ([]model.Question, error) {
	qs := []model.Question{}
	err := r.DB.WithContext(ctx).
		Where("learning_path = ?", learningPath).
		Order("id_assessment asc").
		Find(&qs).Error
	return qs, err
}

func (r *AssessmentRepository) ListAnswers(ctx context.Context, learningPath string) ([]model.Answer, error) {
	as := []model.Answer{}
	err := r.DB.WithContext(ctx).
		Where("learning_path = ?", learningPath).
		Order("id_assessment asc, id_answer asc").
		Find(&as).Error
	return as, err
}
