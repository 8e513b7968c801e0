// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"learnpath_backend/internal/model"
	"learnpath_backend/pkg/database"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database that is closed when
// the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// Seed inserts rows, failing the test on error. Each value must be a model
// pointer or a pointer to a slice of models.
func Seed(t testing.TB, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}

// ReviewFixture seeds one question of the "Go" path with choices 10 (correct)
// and 11, and user 5 having saved choice 10.
func ReviewFixture(t testing.TB, db *gorm.DB) {
	t.Helper()
	Seed(t, db,
		&[]model.Question{
			{IDAssessment: 1, Question: "Which keyword starts a goroutine?", LearningPath: "Go", Level: "Beginner"},
		},
		&[]model.Answer{
			{IDAnswer: 10, IDAssessment: 1, Point: model.CorrectPoint, Text: "go", LearningPath: "Go"},
			{IDAnswer: 11, IDAssessment: 1, Point: 0, Text: "defer", LearningPath: "Go"},
		},
		&model.SavedAnswer{IDUser: 5, IDAssessment: 1, IDAnswer: 10},
	)
}
