package models

// ServiceModel is an agency service offering.
// Title doubles as the join key for pricing plans (PricingPlanModel.Category
// matches by string equality, not by foreign key).
type ServiceModel struct {
	Base
	Title       string `json:"title"       gorm:"not null;index"`
	Description string `json:"description" gorm:"type:text"`
	Details     string `json:"details"     gorm:"type:longtext"`
	Image       string `json:"image"`
	Gradient    string `json:"gradient"`
}

func (ServiceModel) TableName() string { return "services" }
