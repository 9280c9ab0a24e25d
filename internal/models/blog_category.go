package models

// BlogCategoryModel groups blog posts.
type BlogCategoryModel struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`

	Posts []BlogPostModel `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
}

func (BlogCategoryModel) TableName() string { return "blog_categories" }
