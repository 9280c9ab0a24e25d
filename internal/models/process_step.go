package models

// ProcessStepModel is one step of the "how we work" section.
type ProcessStepModel struct {
	Base
	Number      int    `json:"number"      gorm:"not null"`
	Title       string `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon"`
}

func (ProcessStepModel) TableName() string { return "process_steps" }
