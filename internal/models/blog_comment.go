package models

// BlogCommentModel is a reader comment on a post. Comments carry no
// moderation state: once created they are publicly visible.
type BlogCommentModel struct {
	Base
	PostID     string `json:"post_id"     gorm:"index;not null"`
	AuthorName string `json:"author_name" gorm:"not null"`
	Content    string `json:"content"     gorm:"type:text;not null"`
}

func (BlogCommentModel) TableName() string { return "blog_comments" }
