package model

// Course levels, in ascending order.
var CourseLevels = []string{"FUNDAMENTAL", "BEGINNER", "INTERMEDIATE", "PROFESSIONAL"}

// Job experience requirements, in ascending order.
var JobExperiences = []string{
	"freshgraduate",
	"one_to_three_years",
	"four_to_five_years",
	"six_to_ten_years",
	"more_than_ten_years",
}

// swagger:model Course
type Course struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:255;index" json:"name"`
	LearningPath string `gorm:"column:learning_path;size:255" json:"learning_path"`
	Description  string `gorm:"type:text" json:"description"`
	Level        string `gorm:"size:50" json:"level"`
	Technology   string `gorm:"size:512" json:"technology"` // comma separated
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Job
type Job struct {
	ID                   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Position             string `gorm:"size:255" json:"position"`
	Description          string `gorm:"type:text" json:"description"`
	MinimumJobExperience string `gorm:"column:minimum_job_experience;size:50" json:"minimum_job_experience"`
}

func (Job) TableName() string {
	return "jobs"
}

type JobApplicant struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"index" json:"user_id"`
	VacancyID uint `json:"vacancy_id"`
}

func (JobApplicant) TableName() string {
	return "job_applicants"
}
