package service

import (
	"context"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/monitoring"
	"learnpath_backend/pkg/tracing"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ReviewStatus string

const (
	ReviewReady ReviewStatus = "ready"
	// ReviewPartial means saved answers could not be loaded and nothing is pre-selected.
	ReviewPartial ReviewStatus = "partial"
)

type ChoiceColor string

const (
	ChoiceGreen ChoiceColor = "green"
	ChoiceRed   ChoiceColor = "red"
	ChoiceWhite ChoiceColor = "white"
)

type SavedAnswerReader interface {
	List(ctx context.Context, userID string) ([]model.SavedAnswer, error)
}

type AssessmentReader interface {
	ListQuestions(ctx context.Context, learningPath string) ([]model.Question, error)
	ListAnswers(ctx context.Context, learningPath string) ([]model.Answer, error)
}

type ReviewChoice struct {
	IDAnswer uint        `json:"id_answer"`
	Value    string      `json:"value"`
	Text     string      `json:"text"`
	Checked  bool        `json:"checked"`
	Disabled bool        `json:"disabled"`
	Color    ChoiceColor `json:"color"`
}

type ReviewQuestion struct {
	Index         int            `json:"index"`
	IDAssessment  uint           `json:"id_assessment"`
	Question      string         `json:"question"`
	Level         string         `json:"level"`
	Choices       []ReviewChoice `json:"choices"`
	SavedAnswerID *uint          `json:"saved_answer_id,omitempty"`
	Correct       bool           `json:"correct"`
	Message       string         `json:"message"`
}

type Review struct {
	LearningPath      string            `json:"learning_path"`
	UserID            string            `json:"id_user"`
	Locale            string            `json:"locale"`
	Status            ReviewStatus      `json:"status"`
	SavedAnswersError string            `json:"saved_answers_error,omitempty"`
	DefaultValues     map[string]string `json:"default_values"`
	Questions         []ReviewQuestion  `json:"questions"`
}

type ReviewService struct {
	SavedAnswers SavedAnswerReader
	Assessments  AssessmentReader
}

func NewReviewService(saved SavedAnswerReader, assessments AssessmentReader) *ReviewService {
	return &ReviewService{SavedAnswers: saved, Assessments: assessments}
}

// Load runs one load cycle: saved answers first, then the question and
// answer sets of learningPath. A saved answer failure degrades the review to
// ReviewPartial; a question bank failure fails the cycle. ctx is checked
// before every step so a cancelled request never builds a view.
func (s *ReviewService) Load(ctx context.Context, learningPath, userID, locale string) (review *Review, err error) {
	ctx, span := tracing.Start(ctx, "review.load",
		attribute.String("learning_path", learningPath),
		attribute.String("id_user", userID))
	defer func() { tracing.End(span, err) }()

	if learningPath == "" {
		return nil, util.ErrMissingPath
	}
	if userID == "" {
		return nil, util.ErrMissingUserID
	}

	review = &Review{
		LearningPath:  learningPath,
		UserID:        userID,
		Locale:        NormalizeLocale(locale),
		Status:        ReviewReady,
		DefaultValues: map[string]string{},
		Questions:     []ReviewQuestion{},
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	saved, err := s.SavedAnswers.List(ctx, userID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Log.Warn("saved answers unavailable",
			zap.String("id_user", userID),
			zap.Error(err))
		review.Status = ReviewPartial
		review.SavedAnswersError = err.Error()
		saved = nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	questions, err := s.Assessments.ListQuestions(ctx, learningPath)
	if err != nil {
		monitoring.ReviewLoads.WithLabelValues("failed").Inc()
		return nil, err
	}
	answers, err := s.Assessments.ListAnswers(ctx, learningPath)
	if err != nil {
		monitoring.ReviewLoads.WithLabelValues("failed").Inc()
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	questions = FilterQuestions(questions, learningPath)
	answers = FilterAnswers(answers, learningPath)
	review.DefaultValues = DefaultValues(questions, saved)
	review.Questions = buildQuestions(questions, answers, saved, review.DefaultValues, review.Locale)

	monitoring.ReviewLoads.WithLabelValues(string(review.Status)).Inc()
	return review, nil
}

// FilterQuestions keeps rows whose learning path equals path byte for byte.
// Database collations may match case or trailing space insensitively.
func FilterQuestions(qs []model.Question, path string) []model.Question {
	out := make([]model.Question, 0, len(qs))
	for _, q := range qs {
		if q.LearningPath == path {
			out = append(out, q)
		}
	}
	return out
}

func FilterAnswers(as []model.Answer, path string) []model.Answer {
	out := make([]model.Answer, 0, len(as))
	for _, a := range as {
		if a.LearningPath == path {
			out = append(out, a)
		}
	}
	return out
}

// FirstSavedAnswer returns the saved answer with the lowest id for the question.
func FirstSavedAnswer(saved []model.SavedAnswer, idAssessment uint) (model.SavedAnswer, bool) {
	var (
		found model.SavedAnswer
		ok    bool
	)
	for _, sa := range saved {
		if sa.IDAssessment != idAssessment {
			continue
		}
		if !ok || sa.ID < found.ID {
			found, ok = sa, true
		}
	}
	return found, ok
}

// DefaultValues maps every question id to the saved answer id, or "" when
// nothing was saved for it.
func DefaultValues(qs []model.Question, saved []model.SavedAnswer) map[string]string {
	values := make(map[string]string, len(qs))
	for _, q := range qs {
		key := strconv.FormatUint(uint64(q.IDAssessment), 10)
		if sa, ok := FirstSavedAnswer(saved, q.IDAssessment); ok {
			values[key] = strconv.FormatUint(uint64(sa.IDAnswer), 10)
			continue
		}
		values[key] = ""
	}
	return values
}

// ChoiceColorFor marks the saved choice green when correct and red otherwise.
func ChoiceColorFor(a model.Answer, savedAnswerID *uint) ChoiceColor {
	if savedAnswerID == nil || *savedAnswerID != a.IDAnswer {
		return ChoiceWhite
	}
	if a.IsCorrect() {
		return ChoiceGreen
	}
	return ChoiceRed
}

func buildQuestions(qs []model.Question, as []model.Answer, saved []model.SavedAnswer, values map[string]string, locale string) []ReviewQuestion {
	byQuestion := make(map[uint][]model.Answer)
	byID := make(map[uint]model.Answer, len(as))
	for _, a := range as {
		byQuestion[a.IDAssessment] = append(byQuestion[a.IDAssessment], a)
		byID[a.IDAnswer] = a
	}

	out := make([]ReviewQuestion, 0, len(qs))
	for i, q := range qs {
		rq := ReviewQuestion{
			Index:        i + 1,
			IDAssessment: q.IDAssessment,
			Question:     q.Question,
			Level:        q.Level,
			Choices:      []ReviewChoice{},
		}

		if sa, ok := FirstSavedAnswer(saved, q.IDAssessment); ok {
			id := sa.IDAnswer
			rq.SavedAnswerID = &id
			if a, found := byID[id]; found {
				rq.Correct = a.IsCorrect()
			}
		}

		value := values[strconv.FormatUint(uint64(q.IDAssessment), 10)]
		for _, a := range byQuestion[q.IDAssessment] {
			v := strconv.FormatUint(uint64(a.IDAnswer), 10)
			rq.Choices = append(rq.Choices, ReviewChoice{
				IDAnswer: a.IDAnswer,
				Value:    v,
				Text:     a.Text,
				Checked:  value != "" && value == v,
				Disabled: true,
				Color:    ChoiceColorFor(a, rq.SavedAnswerID),
			})
		}
		rq.Message = CorrectnessMessage(locale, q.Level, rq.Correct)
		out = append(out, rq)
	}
	return out
}
