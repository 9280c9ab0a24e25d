package models

// TestimonialModel is a client testimonial. Visitors may submit one through
// the public form; those start unapproved and stay out of public queries
// until an admin flips Approved.
type TestimonialModel struct {
	Base
	Quote     string `json:"quote"      gorm:"type:text;not null"`
	Name      string `json:"name"       gorm:"not null"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Approved  bool   `json:"approved"   gorm:"default:false;index"`
}

func (TestimonialModel) TableName() string { return "testimonials" }
