package repository

import (
	"context"
	"learnpath_backend/internal/model"

	"gorm.io/gorm"
)

// JobRepository reads the course and job catalog used by recommendations.
type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) FindCoursesByNames(ctx context.Context, names []string) ([]model.Course, error) {
	cs := []model.Course{}
	if len(names) == 0 {
		return cs, nil
	}
	err := r.DB.WithContext(ctx).Where("name IN ?", names).Order("id asc").Find(&cs).Error
	return cs, err
}

func (r *JobRepository) ListJobs(ctx context.Context) ([]model.Job, error) {
	js := []model.Job{}
	err := r.DB.WithContext(ctx).Order("id asc").Find(&js).Error
	return js, err
}

func (r *JobRepository) AppliedVacancyIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).
		Model(&model.JobApplicant{}).
		Where("user_id = ?", userID).
		Pluck("vacancy_id", &ids).Error
	return ids, err
}
