package models

// PricingPlanModel is a pricing plan displayed under a service.
// Category is free text expected to equal some ServiceModel.Title; nothing
// enforces that, and a plan whose category matches no service simply never
// resolves.
type PricingPlanModel struct {
	Base
	Title      string      `json:"title"       gorm:"not null"`
	Price      string      `json:"price"`
	Currency   string      `json:"currency"    gorm:"default:'EUR'"`
	Features   StringArray `json:"features"    gorm:"type:longtext"`
	IsPopular  bool        `json:"is_popular"  gorm:"default:false"`
	Category   string      `json:"category"    gorm:"index"`
	ButtonText string      `json:"button_text"`
	ButtonLink string      `json:"button_link"`
}

func (PricingPlanModel) TableName() string { return "pricing_plans" }
