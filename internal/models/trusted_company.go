package models

// TrustedCompanyModel is a partner logo shown in the trust strip.
type TrustedCompanyModel struct {
	Base
	Name    string `json:"name"     gorm:"not null"`
	LogoURL string `json:"logo_url"`
	Website string `json:"website"`
}

func (TrustedCompanyModel) TableName() string { return "trusted_companies" }
