package models

// UserModel is a back-office account.
type UserModel struct {
	Base
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"        gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }
