package service

import (
	"context"
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/testutil"
	"learnpath_backend/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newImportService(t *testing.T, files map[string]string) (*ImportService, *gorm.DB) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	db := testutil.NewDB(t)
	return NewImportService(repository.NewImportRepository(db), &LocalStorageProvider{Root: dir}), db
}

func TestImportService_Courses(t *testing.T) {
	csv := "\ufeffID;Name;Learning_Path;Description;Level;Technology\n" +
		"1;Belajar Dasar Git;Back-End;Version control;BEGINNER;git\n" +
		"short;row\n" +
		"2;Memulai Pemrograman Go;Back-End;Goroutine dan channel;BEGINNER;go\n" +
		"x;Broken;Back-End;bad id;BEGINNER;go\n"
	svc, db := newImportService(t, map[string]string{"courses.csv": csv})

	res, err := svc.Import(context.Background(), "courses", "courses.csv")
	require.NoError(t, err)
	assert.Equal(t, "courses", res.Dataset)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Skipped)

	var courses []model.Course
	require.NoError(t, db.Order("id").Find(&courses).Error)
	require.Len(t, courses, 2)
	assert.Equal(t, "Memulai Pemrograman Go", courses[1].Name)
	assert.Equal(t, "go", courses[1].Technology)
}

func TestImportService_RatingsDecimalComma(t *testing.T) {
	csv := "respondent_identifier;course_name;rating\n7;Belajar Dasar Git;4,5\n"
	svc, db := newImportService(t, map[string]string{"ratings.csv": csv})
	svc.BatchSize = 1

	res, err := svc.Import(context.Background(), "ratings", "ratings.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	var r model.Rating
	require.NoError(t, db.First(&r).Error)
	assert.Equal(t, uint(7), r.RespondentIdentifier)
	assert.InDelta(t, 4.5, r.Rating, 1e-9)
}

func TestImportService_Answers(t *testing.T) {
	csv := "id_answer;id_assessment;point;text;learning_path\n10;1;1;go;Go\n11;1;0;defer;Go\n12;1;one;bad;Go\n"
	svc, db := newImportService(t, map[string]string{"answers.csv": csv})

	res, err := svc.Import(context.Background(), "answer_assessment", "answers.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)

	var correct model.Answer
	require.NoError(t, db.First(&correct, "id_answer = ?", 10).Error)
	assert.True(t, correct.IsCorrect())
}

func TestImportService_Errors(t *testing.T) {
	svc, _ := newImportService(t, map[string]string{"empty.csv": ""})

	_, err := svc.Import(context.Background(), "students", "empty.csv")
	assert.ErrorIs(t, err, util.ErrUnknownDataset)

	_, err = svc.Import(context.Background(), "jobs", "missing.csv")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing.csv"))

	res, err := svc.Import(context.Background(), "jobs", "empty.csv")
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
}

func TestDatasets(t *testing.T) {
	assert.Equal(t, []string{
		"answer_assessment", "courses", "job_applicants", "jobs", "ratings", "skill_assessment",
	}, Datasets())
}

func TestLocalStorageProvider_StaysInRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.csv"), []byte("x"), 0o644))
	p := &LocalStorageProvider{Root: root}

	rc, err := p.Open(context.Background(), "../a.csv")
	require.NoError(t, err)
	rc.Close()
}

func TestNewStorageProvider(t *testing.T) {
	p, err := NewStorageProvider(&config.StorageConfig{Type: "local", LocalPath: "data"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorageProvider{}, p)
	assert.Equal(t, filepath.Join("data", "jobs.csv"), p.Describe("jobs.csv"))

	_, err = NewStorageProvider(&config.StorageConfig{Type: "ftp"})
	assert.ErrorIs(t, err, util.ErrUnsupportedStorage)
}

func TestNewStorageProvider_Remote(t *testing.T) {
	p, err := NewStorageProvider(&config.StorageConfig{
		Type:          "minio",
		MinioEndpoint: "localhost:9000",
		MinioAccessID: "minio",
		MinioSecret:   "minio123",
		MinioBucket:   "datasets",
	})
	require.NoError(t, err)
	assert.Equal(t, "minio://datasets/jobs.csv", p.Describe("jobs.csv"))

	p, err = NewStorageProvider(&config.StorageConfig{
		Type:         "oss",
		OSSEndpoint:  "http://oss-ap-southeast-5.aliyuncs.com",
		OSSAccessKey: "key",
		OSSSecretKey: "secret",
		OSSBucket:    "datasets",
	})
	require.NoError(t, err)
	assert.Equal(t, "oss://datasets/jobs.csv", p.Describe("jobs.csv"))
}
