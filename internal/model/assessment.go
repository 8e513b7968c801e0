package model

// CorrectPoint marks the correct choice of a question.
const CorrectPoint = 1

// Question is a single skill assessment question of a learning path.
// swagger:model Question
type Question struct {
	IDAssessment uint   `gorm:"column:id_assessment;primaryKey;autoIncrement" json:"id_assessment"`
	Question     string `gorm:"type:text" json:"question"`
	LearningPath string `gorm:"column:learning_path;size:255;index" json:"learning_path"`
	Level        string `gorm:"size:50" json:"level"`
}

func (Question) TableName() string {
	return "skill_assessment"
}

// Answer is a candidate choice of a question.
// swagger:model Answer
type Answer struct {
	IDAnswer     uint   `gorm:"column:id_answer;primaryKey;autoIncrement" json:"id_answer"`
	IDAssessment uint   `gorm:"column:id_assessment;index" json:"id_assessment"`
	Point        int    `gorm:"default:0" json:"point"`
	Text         string `gorm:"type:text" json:"text"`
	LearningPath string `gorm:"column:learning_path;size:255;index" json:"learning_path"`
}

func (Answer) TableName() string {
	return "answer_assessment"
}

func (a Answer) IsCorrect() bool {
	return a.Point == CorrectPoint
}
