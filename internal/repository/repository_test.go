package repository

import (
	"context"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingRepository_FindByRespondent(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Seed(t, db, &[]model.Rating{
		{RespondentIdentifier: 7, CourseName: "Belajar Dasar Git", Rating: 4.5},
		{RespondentIdentifier: 8, CourseName: "Belajar Dasar Git", Rating: 3},
		{RespondentIdentifier: 7, CourseName: "Memulai Pemrograman Go", Rating: 5},
	})
	repo := NewRatingRepository(db)

	rows, err := repo.FindByRespondent(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, uint(7), r.RespondentIdentifier)
		assert.NotZero(t, r.ID)
	}

	rows, err = repo.FindByRespondent(context.Background(), "99")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRatingRepository_CreateThenFind(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRatingRepository(db)

	rating := &model.Rating{RespondentIdentifier: 3, CourseName: "Menjadi Back-End Developer", Rating: 4}
	require.NoError(t, repo.Create(context.Background(), rating))
	assert.NotZero(t, rating.ID)

	rows, err := repo.FindByRespondent(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, *rating, rows[0])
}

func TestRatingRepository_CourseNamesByRespondent(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Seed(t, db, &[]model.Rating{
		{RespondentIdentifier: 1, CourseName: "A", Rating: 4},
		{RespondentIdentifier: 1, CourseName: "A", Rating: 5},
		{RespondentIdentifier: 1, CourseName: "B", Rating: 3},
		{RespondentIdentifier: 2, CourseName: "C", Rating: 3},
	})

	names, err := NewRatingRepository(db).CourseNamesByRespondent(context.Background(), 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B"}, names)
}

func TestSavedAnswerRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSavedAnswerRepository(db)
	ctx := context.Background()

	first := &model.SavedAnswer{IDUser: 5, IDAssessment: 1, IDAnswer: 10}
	second := &model.SavedAnswer{IDUser: 5, IDAssessment: 1, IDAnswer: 11}
	other := &model.SavedAnswer{IDUser: 6, IDAssessment: 1, IDAnswer: 11}
	for _, a := range []*model.SavedAnswer{first, second, other} {
		require.NoError(t, repo.Create(ctx, a))
	}
	assert.NotEqual(t, first.ID, second.ID, "inserts never upsert")

	rows, err := repo.FindByUser(ctx, "5")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, uint(5), r.IDUser)
	}
}

func TestAssessmentRepository(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.ReviewFixture(t, db)
	testutil.Seed(t, db,
		&model.Question{IDAssessment: 2, Question: "q", LearningPath: "Android", Level: "Beginner"},
		&model.Answer{IDAnswer: 20, IDAssessment: 2, LearningPath: "Android"},
	)
	repo := NewAssessmentRepository(db)
	ctx := context.Background()

	qs, err := repo.ListQuestions(ctx, "Go")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, uint(1), qs[0].IDAssessment)

	as, err := repo.ListAnswers(ctx, "Go")
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, uint(10), as[0].IDAnswer)
	assert.Equal(t, uint(11), as[1].IDAnswer)
}

func TestJobRepository(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Seed(t, db,
		&[]model.Course{
			{ID: 1, Name: "Belajar Dasar Git", LearningPath: "Back-End"},
			{ID: 2, Name: "Memulai Pemrograman Go", LearningPath: "Back-End"},
		},
		&[]model.Job{{ID: 1, Position: "Backend Engineer"}, {ID: 2, Position: "Designer"}},
		&model.JobApplicant{UserID: 4, VacancyID: 2},
	)
	repo := NewJobRepository(db)
	ctx := context.Background()

	cs, err := repo.FindCoursesByNames(ctx, []string{"Memulai Pemrograman Go", "Unknown"})
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, uint(2), cs[0].ID)

	cs, err = repo.FindCoursesByNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, cs)

	js, err := repo.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, js, 2)

	ids, err := repo.AppliedVacancyIDs(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)
}

func TestImportRepository_CreateInBatches(t *testing.T) {
	db := testutil.NewDB(t)
	rows := []model.Job{{Position: "a"}, {Position: "b"}, {Position: "c"}}

	require.NoError(t, NewImportRepository(db).CreateInBatches(context.Background(), &rows, 2))

	var count int64
	require.NoError(t, db.Model(&model.Job{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
