package model

// swagger:model Rating
type Rating struct {
	ID                   uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	RespondentIdentifier uint    `gorm:"index" json:"respondent_identifier"`
	CourseName           string  `gorm:"size:255" json:"course_name"`
	Rating               float64 `json:"rating"`
}

func (Rating) TableName() string {
	return "ratings"
}
