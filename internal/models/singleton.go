package models

import "time"

// SingletonID is the fixed primary key of single-row kinds. The company
// module only ever reads and updates this row, it never inserts a second.
const SingletonID uint = 1

// CompanyInfoModel holds the agency's global contact block.
type CompanyInfoModel struct {
	ID        uint        `json:"id"       gorm:"primaryKey"`
	Name      string      `json:"name"`
	Tagline   string      `json:"tagline"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	LogoURL   string      `json:"logo_url"`
	Socials   StringArray `json:"socials"  gorm:"type:longtext"`
	UpdatedAt time.Time   `json:"modified"`
}

func (CompanyInfoModel) TableName() string { return "company_info" }

// AboutSectionModel holds the "about us" page content.
type AboutSectionModel struct {
	ID        uint      `json:"id"        gorm:"primaryKey"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Content   string    `json:"content"   gorm:"type:longtext"`
	ImageURL  string    `json:"image_url"`
	UpdatedAt time.Time `json:"modified"`
}

func (AboutSectionModel) TableName() string { return "about_section" }
