package models

// FAQModel is a frequently-asked question. Only active entries are served
// to the public site.
type FAQModel struct {
	Base
	Question string `json:"question"  gorm:"type:text;not null"`
	Answer   string `json:"answer"    gorm:"type:longtext"`
	Order    int    `json:"order"     gorm:"column:order_num;default:0"`
	IsActive bool   `json:"is_active" gorm:"default:true;index"`
}

func (FAQModel) TableName() string { return "faqs" }
