package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/tracing"
	"sort"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const DefaultImportBatchSize = 500

// ImportResult summarizes one dataset file.
type ImportResult struct {
	Dataset  string
	Source   string
	Imported int
	Skipped  int
}

type record map[string]string

type datasetImporter func(ctx context.Context, s *ImportService, records []record) (imported, skipped int, err error)

var datasetImporters = map[string]datasetImporter{
	"courses":           importer(parseCourse),
	"jobs":              importer(parseJob),
	"job_applicants":    importer(parseJobApplicant),
	"ratings":           importer(parseRating),
	"skill_assessment":  importer(parseQuestion),
	"answer_assessment": importer(parseAnswer),
}

// Datasets lists the names accepted by Import.
func Datasets() []string {
	names := make([]string, 0, len(datasetImporters))
	for name := range datasetImporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type ImportService struct {
	Repo      *repository.ImportRepository
	Storage   StorageProvider
	BatchSize int
}

func NewImportService(repo *repository.ImportRepository, storage StorageProvider) *ImportService {
	return &ImportService{Repo: repo, Storage: storage, BatchSize: DefaultImportBatchSize}
}

// Import loads a ';' separated file with a header row into the dataset's table.
// Rows with a wrong column count or unparsable numbers are skipped.
func (s *ImportService) Import(ctx context.Context, dataset, name string) (res *ImportResult, err error) {
	ctx, span := tracing.Start(ctx, "dataset.import",
		attribute.String("dataset", dataset),
		attribute.String("file", name))
	defer func() { tracing.End(span, err) }()

	imp, ok := datasetImporters[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", util.ErrUnknownDataset, dataset)
	}

	rc, err := s.Storage.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Storage.Describe(name), err)
	}
	defer rc.Close()

	records, skipped, err := readRecords(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Storage.Describe(name), err)
	}

	imported, badRows, err := imp(ctx, s, records)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", dataset, err)
	}

	res = &ImportResult{
		Dataset:  dataset,
		Source:   s.Storage.Describe(name),
		Imported: imported,
		Skipped:  skipped + badRows,
	}
	logger.Log.Info("dataset imported",
		zap.String("dataset", dataset),
		zap.String("source", res.Source),
		zap.Int("imported", res.Imported),
		zap.Int("skipped", res.Skipped))
	return res, nil
}

func readRecords(r io.Reader) ([]record, int, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")))
	}

	var (
		records []record
		skipped int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if len(row) != len(header) {
			skipped++
			continue
		}
		rec := make(record, len(header))
		for i, col := range header {
			rec[col] = strings.TrimSpace(row[i])
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func importer[T any](parse func(record) (T, error)) datasetImporter {
	return func(ctx context.Context, s *ImportService, records []record) (int, int, error) {
		rows := make([]T, 0, len(records))
		skipped := 0
		for _, rec := range records {
			row, err := parse(rec)
			if err != nil {
				skipped++
				continue
			}
			rows = append(rows, row)
		}
		if len(rows) == 0 {
			return 0, skipped, nil
		}
		batch := s.BatchSize
		if batch <= 0 {
			batch = DefaultImportBatchSize
		}
		if err := s.Repo.CreateInBatches(ctx, &rows, batch); err != nil {
			return 0, skipped, err
		}
		return len(rows), skipped, nil
	}
}

func (r record) uintCol(col string) (uint, error) {
	v, ok := r[col]
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return uint(n), nil
}

func (r record) intCol(col string) (int, error) {
	v, ok := r[col]
	if !ok || v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func (r record) floatCol(col string) (float64, error) {
	v, ok := r[col]
	if !ok || v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
}

func parseCourse(r record) (model.Course, error) {
	id, err := r.uintCol("id")
	if err != nil {
		return model.Course{}, err
	}
	return model.Course{
		ID:           id,
		Name:         r["name"],
		LearningPath: r["learning_path"],
		Description:  r["description"],
		Level:        r["level"],
		Technology:   r["technology"],
	}, nil
}

func parseJob(r record) (model.Job, error) {
	id, err := r.uintCol("id")
	if err != nil {
		return model.Job{}, err
	}
	return model.Job{
		ID:                   id,
		Position:             r["position"],
		Description:          r["description"],
		MinimumJobExperience: r["minimum_job_experience"],
	}, nil
}

func parseJobApplicant(r record) (model.JobApplicant, error) {
	userID, err := r.uintCol("user_id")
	if err != nil {
		return model.JobApplicant{}, err
	}
	vacancyID, err := r.uintCol("vacancy_id")
	if err != nil {
		return model.JobApplicant{}, err
	}
	return model.JobApplicant{UserID: userID, VacancyID: vacancyID}, nil
}

func parseRating(r record) (model.Rating, error) {
	respondent, err := r.uintCol("respondent_identifier")
	if err != nil {
		return model.Rating{}, err
	}
	rating, err := r.floatCol("rating")
	if err != nil {
		return model.Rating{}, err
	}
	return model.Rating{
		RespondentIdentifier: respondent,
		CourseName:           r["course_name"],
		Rating:               rating,
	}, nil
}

func parseQuestion(r record) (model.Question, error) {
	id, err := r.uintCol("id_assessment")
	if err != nil {
		return model.Question{}, err
	}
	return model.Question{
		IDAssessment: id,
		Question:     r["question"],
		LearningPath: r["learning_path"],
		Level:        r["level"],
	}, nil
}

func parseAnswer(r record) (model.Answer, error) {
	id, err := r.uintCol("id_answer")
	if err != nil {
		return model.Answer{}, err
	}
	assessment, err := r.uintCol("id_assessment")
	if err != nil {
		return model.Answer{}, err
	}
	point, err := r.intCol("point")
	if err != nil {
		return model.Answer{}, err
	}
	return model.Answer{
		IDAnswer:     id,
		IDAssessment: assessment,
		Point:        point,
		Text:         r["text"],
		LearningPath: r["learning_path"],
	}, nil
}
