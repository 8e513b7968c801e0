package service

import (
	"context"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/testutil"
	"learnpath_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewRatingService(repository.NewRatingRepository(db))
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, util.ErrMissingUserID)

	created, err := svc.Create(ctx, RatingRequest{RespondentIdentifier: 12, CourseName: "Belajar Dasar Git", Rating: 4})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Belajar Dasar Git", created.CourseName)

	rows, err := svc.List(ctx, "12")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)
}

func TestSavedAnswerService(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSavedAnswerService(repository.NewSavedAnswerRepository(db))
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, util.ErrMissingUserID)

	req := SavedAnswerRequest{IDUser: 5, IDAssessment: 1, IDAnswer: 10}
	a, err := svc.Create(ctx, req)
	require.NoError(t, err)
	b, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	rows, err := svc.List(ctx, "5")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAssessmentService_WithoutCache(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.ReviewFixture(t, db)
	svc := NewAssessmentService(repository.NewAssessmentRepository(db), nil, 0)
	ctx := context.Background()

	_, err := svc.ListQuestions(ctx, "")
	assert.ErrorIs(t, err, util.ErrMissingLearningPath)
	_, err = svc.ListAnswers(ctx, "")
	assert.ErrorIs(t, err, util.ErrMissingLearningPath)

	qs, err := svc.ListQuestions(ctx, "Go")
	require.NoError(t, err)
	assert.Len(t, qs, 1)

	as, err := svc.ListAnswers(ctx, "Go")
	require.NoError(t, err)
	assert.Len(t, as, 2)

	qs, err = svc.ListQuestions(ctx, "go")
	require.NoError(t, err)
	assert.Empty(t, FilterQuestions(qs, "go"))
}
