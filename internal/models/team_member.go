package models

// TeamMemberModel is a staff profile on the team page.
type TeamMemberModel struct {
	Base
	Name     string      `json:"name"      gorm:"not null"`
	Role     string      `json:"role"`
	Bio      string      `json:"bio"       gorm:"type:text"`
	PhotoURL string      `json:"photo_url"`
	Socials  StringArray `json:"socials"   gorm:"type:longtext"`
}

func (TeamMemberModel) TableName() string { return "team_members" }
