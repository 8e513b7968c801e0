package model

// SavedAnswer records that a user picked an answer for an assessment question.
// (id_user, id_assessment) is not unique.
// swagger:model SavedAnswer
type SavedAnswer struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	IDUser       uint `gorm:"column:id_user;index" json:"id_user"`
	IDAssessment uint `gorm:"column:id_assessment" json:"id_assessment"`
	IDAnswer     uint `gorm:"column:id_answer" json:"id_answer"`
}

func (SavedAnswer) TableName() string {
	return "saved_answer"
}
