package service

import (
	"context"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/monitoring"
)

type RatingService struct {
	Repo *repository.RatingRepository
}

func NewRatingService(repo *repository.RatingRepository) *RatingService {
	return &RatingService{Repo: repo}
}

type RatingRequest struct {
	RespondentIdentifier uint    `json:"respondent_identifier"`
	CourseName           string  `json:"course_name"`
	Rating               float64 `json:"rating"`
}

func (s *RatingService) List(ctx context.Context, userID string) ([]model.Rating, error) {
	if userID == "" {
		return nil, util.ErrMissingUserID
	}
	return s.Repo.FindByRespondent(ctx, userID)
}

// Create stores the rating as submitted. Range and duplicates are not checked.
func (s *RatingService) Create(ctx context.Context, req RatingRequest) (*model.Rating, error) {
	r := &model.Rating{
		RespondentIdentifier: req.RespondentIdentifier,
		CourseName:           req.CourseName,
		Rating:               req.Rating,
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		return nil, err
	}
	monitoring.RatingsCreated.Inc()
	return r, nil
}
