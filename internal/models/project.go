package models

// ProjectModel is a portfolio entry.
type ProjectModel struct {
	Base
	Title       string      `json:"title"       gorm:"not null"`
	Description string      `json:"description" gorm:"type:text"`
	Image       string      `json:"image"`
	Link        string      `json:"link"`
	Tags        StringArray `json:"tags"        gorm:"type:longtext"`
}

func (ProjectModel) TableName() string { return "projects" }
