package service

import (
	"context"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/pkg/monitoring"
	"learnpath_backend/pkg/tracing"
	"math"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

const MaxRecommendations = 10

const (
	nameWeight  = 0.4
	descWeight  = 0.3
	levelWeight = 0.2
	techWeight  = 0.05
)

type Recommendation struct {
	JobID      uint    `json:"id"`
	Position   string  `json:"position"`
	Similarity float64 `json:"similarity"`
}

// RecommendationResponse keeps the column layout the job board consumes.
type RecommendationResponse struct {
	ID         []uint    `json:"id"`
	Position   []string  `json:"position"`
	Similarity []float64 `json:"similarity"`
}

func NewRecommendationResponse(recs []Recommendation) RecommendationResponse {
	res := RecommendationResponse{
		ID:         make([]uint, len(recs)),
		Position:   make([]string, len(recs)),
		Similarity: make([]float64, len(recs)),
	}
	for i, r := range recs {
		res.ID[i] = r.JobID
		res.Position[i] = r.Position
		res.Similarity[i] = r.Similarity
	}
	return res
}

type RecommendationService struct {
	Ratings *repository.RatingRepository
	Jobs    *repository.JobRepository
}

func NewRecommendationService(ratings *repository.RatingRepository, jobs *repository.JobRepository) *RecommendationService {
	return &RecommendationService{Ratings: ratings, Jobs: jobs}
}

// Recommend ranks the jobs a user has not applied to against the courses
// they rated. Each learning path gets a share of the ten slots proportional
// to how many of its courses the user rated.
func (s *RecommendationService) Recommend(ctx context.Context, userID uint) (recs []Recommendation, err error) {
	ctx, span := tracing.Start(ctx, "recommendation.rank", attribute.Int64("user_id", int64(userID)))
	defer func() {
		span.SetAttributes(attribute.Int("recommendations", len(recs)))
		tracing.End(span, err)
	}()

	names, err := s.Ratings.CourseNamesByRespondent(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses, err := s.Jobs.FindCoursesByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		monitoring.RecommendationsServed.Inc()
		return []Recommendation{}, nil
	}

	applied, err := s.Jobs.AppliedVacancyIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.Jobs.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	recs = rankJobs(courses, excludeJobs(jobs, applied))
	monitoring.RecommendationsServed.Inc()
	return recs, nil
}

func excludeJobs(jobs []model.Job, ids []uint) []model.Job {
	skip := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if _, ok := skip[j.ID]; !ok {
			out = append(out, j)
		}
	}
	return out
}

type pathShare struct {
	path    string
	courses []model.Course
	slots   int
}

// pathShares groups courses by learning path, largest group first. A path
// gets floor(count*10/total) slots.
func pathShares(courses []model.Course) []pathShare {
	index := map[string]int{}
	var shares []pathShare
	for _, c := range courses {
		i, ok := index[c.LearningPath]
		if !ok {
			i = len(shares)
			index[c.LearningPath] = i
			shares = append(shares, pathShare{path: c.LearningPath})
		}
		shares[i].courses = append(shares[i].courses, c)
	}
	total := len(courses)
	for i := range shares {
		shares[i].slots = len(shares[i].courses) * MaxRecommendations / total
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return len(shares[i].courses) > len(shares[j].courses)
	})
	return shares
}

func rankJobs(courses []model.Course, jobs []model.Job) []Recommendation {
	cleanedCourses := make(map[uint]string, len(courses))
	for _, c := range courses {
		cleanedCourses[c.ID] = CleanText(c.Description)
	}
	cleanedJobs := make([]string, len(jobs))
	for i, j := range jobs {
		cleanedJobs[i] = CleanText(j.Description)
	}

	best := map[uint]Recommendation{}
	for _, share := range pathShares(courses) {
		if share.slots == 0 {
			continue
		}
		pathRecs := make([]Recommendation, 0, len(jobs))
		for i, job := range jobs {
			var top float64
			for _, c := range share.courses {
				sim := similarity(c, cleanedCourses[c.ID], job, cleanedJobs[i])
				if sim > top {
					top = sim
				}
			}
			pathRecs = append(pathRecs, Recommendation{JobID: job.ID, Position: job.Position, Similarity: top})
		}
		sortRecommendations(pathRecs)
		if len(pathRecs) > share.slots {
			pathRecs = pathRecs[:share.slots]
		}
		// a job picked by two paths keeps its best score
		for _, r := range pathRecs {
			if cur, ok := best[r.JobID]; !ok || r.Similarity > cur.Similarity {
				best[r.JobID] = r
			}
		}
	}

	recs := make([]Recommendation, 0, len(best))
	for _, r := range best {
		recs = append(recs, r)
	}
	sortRecommendations(recs)
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

func sortRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Similarity != recs[j].Similarity {
			return recs[i].Similarity > recs[j].Similarity
		}
		return recs[i].JobID < recs[j].JobID
	})
}

// similarity weighs name/path against position, descriptions, level against
// required experience, and how often the course technologies appear in the job.
func similarity(c model.Course, courseDesc string, j model.Job, jobDesc string) float64 {
	descSim := TFIDFCosine(courseDesc, jobDesc)
	nameSim := TFIDFCosine(c.Name+" "+c.LearningPath, j.Position)
	return nameWeight*nameSim +
		descWeight*descSim +
		levelWeight*LevelSimilarity(c.Level, j.MinimumJobExperience) +
		techWeight*TechnologySimilarity(c.Technology, jobDesc)
}

// LevelSimilarity compares positions on the course level and job experience
// scales. Unknown values score 0.
func LevelSimilarity(level, experience string) float64 {
	li := indexOf(model.CourseLevels, level)
	ei := indexOf(model.JobExperiences, experience)
	if li < 0 || ei < 0 {
		return 0
	}
	scale := math.Max(float64(len(model.CourseLevels)), float64(len(model.JobExperiences)))
	return 1 - math.Abs(float64(li-ei))/scale
}

// TechnologySimilarity counts occurrences of each comma separated technology
// in the job description, averaged over the technologies.
func TechnologySimilarity(technology, jobDesc string) float64 {
	var techs []string
	for _, t := range strings.Split(technology, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			techs = append(techs, t)
		}
	}
	if len(techs) == 0 {
		return 0
	}
	count := 0
	for _, t := range techs {
		count += strings.Count(jobDesc, t)
	}
	return float64(count) / float64(len(techs))
}

func indexOf(values []string, v string) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
