package service

import (
	"context"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecommendationData(t *testing.T) *RecommendationService {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.Seed(t, db,
		&[]model.Course{
			{ID: 1, Name: "Belajar Membuat Aplikasi Back-End", LearningPath: "Back-End",
				Description: "Membangun RESTful API dengan JavaScript dan Node.js", Level: "BEGINNER", Technology: "javascript, node.js"},
			{ID: 2, Name: "Belajar Dasar Visualisasi Data", LearningPath: "Data Scientist",
				Description: "Visualisasi data dengan Python", Level: "BEGINNER", Technology: "python"},
		},
		&[]model.Job{
			{ID: 1, Position: "Back-End Developer", Description: "Membangun RESTful API backend dengan JavaScript", MinimumJobExperience: "freshgraduate"},
			{ID: 2, Position: "Graphic Designer", Description: "Desain grafis untuk kampanye pemasaran", MinimumJobExperience: "six_to_ten_years"},
			{ID: 3, Position: "Back-End Engineer", Description: "RESTful API JavaScript Node.js", MinimumJobExperience: "freshgraduate"},
		},
		&[]model.Rating{
			{RespondentIdentifier: 1, CourseName: "Belajar Membuat Aplikasi Back-End", Rating: 5},
		},
		&model.JobApplicant{UserID: 1, VacancyID: 3},
	)
	return NewRecommendationService(repository.NewRatingRepository(db), repository.NewJobRepository(db))
}

func TestRecommendationService_Recommend(t *testing.T) {
	svc := seedRecommendationData(t)

	recs, err := svc.Recommend(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, uint(1), recs[0].JobID)
	assert.Equal(t, "Back-End Developer", recs[0].Position)
	assert.Greater(t, recs[0].Similarity, recs[1].Similarity)
	for _, r := range recs {
		assert.NotEqual(t, uint(3), r.JobID, "applied jobs are excluded")
	}
}

func TestRecommendationService_NoRatings(t *testing.T) {
	svc := seedRecommendationData(t)

	recs, err := svc.Recommend(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestPathShares(t *testing.T) {
	courses := []model.Course{
		{ID: 1, LearningPath: "Android"},
		{ID: 2, LearningPath: "Back-End"},
		{ID: 3, LearningPath: "Back-End"},
		{ID: 4, LearningPath: "Back-End"},
	}

	shares := pathShares(courses)
	require.Len(t, shares, 2)
	assert.Equal(t, "Back-End", shares[0].path)
	assert.Equal(t, 7, shares[0].slots)
	assert.Equal(t, "Android", shares[1].path)
	assert.Equal(t, 2, shares[1].slots)
}

func TestRankJobs_DedupesAndCaps(t *testing.T) {
	courses := []model.Course{
		{ID: 1, Name: "Go", LearningPath: "Back-End", Description: "golang api"},
		{ID: 2, Name: "Kotlin", LearningPath: "Android", Description: "golang api"},
	}
	jobs := make([]model.Job, 0, 15)
	for i := 1; i <= 15; i++ {
		jobs = append(jobs, model.Job{ID: uint(i), Position: "Engineer", Description: "golang api"})
	}

	recs := rankJobs(courses, jobs)
	assert.LessOrEqual(t, len(recs), MaxRecommendations)

	seen := map[uint]bool{}
	for _, r := range recs {
		assert.False(t, seen[r.JobID], "job %d listed twice", r.JobID)
		seen[r.JobID] = true
	}
}

func TestLevelSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, LevelSimilarity("FUNDAMENTAL", "freshgraduate"), 1e-9)
	assert.InDelta(t, 0.8, LevelSimilarity("BEGINNER", "freshgraduate"), 1e-9)
	assert.InDelta(t, 0.8, LevelSimilarity("PROFESSIONAL", "more_than_ten_years"), 1e-9)
	assert.Zero(t, LevelSimilarity("EXPERT", "freshgraduate"))
	assert.Zero(t, LevelSimilarity("BEGINNER", ""))
}

func TestTechnologySimilarity(t *testing.T) {
	assert.InDelta(t, 1.5, TechnologySimilarity("Go, Docker", "go docker go"), 1e-9)
	assert.Zero(t, TechnologySimilarity(" , ", "go"))
	assert.Zero(t, TechnologySimilarity("rust", "go docker"))
}

func TestNewRecommendationResponse(t *testing.T) {
	res := NewRecommendationResponse([]Recommendation{
		{JobID: 4, Position: "Backend", Similarity: 0.9},
		{JobID: 2, Position: "Mobile", Similarity: 0.5},
	})
	assert.Equal(t, []uint{4, 2}, res.ID)
	assert.Equal(t, []string{"Backend", "Mobile"}, res.Position)
	assert.Equal(t, []float64{0.9, 0.5}, res.Similarity)
}
