package models

const (
	InquiryNew     = "new"
	InquiryRead    = "read"
	InquiryReplied = "replied"
)

// ContactInquiryModel is a contact form submission.
type ContactInquiryModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"index;not null"`
	Phone   string `json:"phone"`
	Message string `json:"message" gorm:"type:text;not null"`
	Status  string `json:"status"  gorm:"default:'new'"`
}

func (ContactInquiryModel) TableName() string { return "contact_inquiries" }
