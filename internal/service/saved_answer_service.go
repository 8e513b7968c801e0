package service

import (
	"context"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/monitoring"
)

type SavedAnswerService struct {
	Repo *repository.SavedAnswerRepository
}

func NewSavedAnswerService(repo *repository.SavedAnswerRepository) *SavedAnswerService {
	return &SavedAnswerService{Repo: repo}
}

type SavedAnswerRequest struct {
	IDUser       uint `json:"id_user"`
	IDAssessment uint `json:"id_assessment"`
	IDAnswer     uint `json:"id_answer"`
}

func (s *SavedAnswerService) List(ctx context.Context, userID string) ([]model.SavedAnswer, error) {
	if userID == "" {
		return nil, util.ErrMissingUserID
	}
	return s.Repo.FindByUser(ctx, userID)
}

// Create always inserts; a second submission for the same question adds a row.
func (s *SavedAnswerService) Create(ctx context.Context, req SavedAnswerRequest) (*model.SavedAnswer, error) {
	a := &model.SavedAnswer{
		IDUser:       req.IDUser,
		IDAssessment: req.IDAssessment,
		IDAnswer:     req.IDAnswer,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	monitoring.SavedAnswersCreated.Inc()
	return a, nil
}
