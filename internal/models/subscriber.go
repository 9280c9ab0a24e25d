package models

// SubscriberModel is a newsletter subscriber. Email is unique at the store
// level: a duplicate insert is rejected, never merged.
// IsActive gates inclusion in outbound sends, not public display.
type SubscriberModel struct {
	Base
	Email    string `json:"email"     gorm:"uniqueIndex;not null"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
	Source   string `json:"source"`
}

func (SubscriberModel) TableName() string { return "subscribers" }
