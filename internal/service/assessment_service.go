package service

import (
	"context"
	"encoding/json"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	questionCacheKeyPrefix = "assessment:questions:"
	answerCacheKeyPrefix   = "assessment:answers:"
)

// AssessmentService serves the question bank of a learning path. When Redis
// is nil every read goes to the database.
type AssessmentService struct {
	Repo     *repository.AssessmentRepository
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewAssessmentService(repo *repository.AssessmentRepository, rdb *redis.Client, ttl time.Duration) *AssessmentService {
	return &AssessmentService{Repo: repo, Redis: rdb, CacheTTL: ttl}
}

func (s *AssessmentService) ListQuestions(ctx context.Context, learningPath string) ([]model.Question, error) {
	if learningPath == "" {
		return nil, util.ErrMissingLearningPath
	}

	var qs []model.Question
	key := questionCacheKeyPrefix + learningPath
	if s.cacheGet(ctx, key, &qs) {
		return qs, nil
	}

	qs, err := s.Repo.ListQuestions(ctx, learningPath)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, qs)
	return qs, nil
}

func (s *AssessmentService) ListAnswers(ctx context.Context, learningPath string) ([]model.Answer, error) {
	if learningPath == "" {
		return nil, util.ErrMissingLearningPath
	}

	var as []model.Answer
	key := answerCacheKeyPrefix + learningPath
	if s.cacheGet(ctx, key, &as) {
		return as, nil
	}

	as, err := s.Repo.ListAnswers(ctx, learningPath)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, as)
	return as, nil
}

func (s *AssessmentService) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if s.Redis == nil {
		return false
	}
	val, err := s.Redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Log.Warn("assessment cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		logger.Log.Warn("assessment cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *AssessmentService) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, b, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("assessment cache write failed", zap.String("key", key), zap.Error(err))
	}
}
