package models

import (
	"time"
)

// Post statuses. Stored as plain strings so the column stays portable.
const (
	PostStatusDraft     = "DRAFT"
	PostStatusPublished = "PUBLISHED"
	PostStatusScheduled = "SCHEDULED"
	PostStatusArchived  = "ARCHIVED"
)

// ValidPostStatus reports whether s is one of the known post statuses.
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled, PostStatusArchived:
		return true
	}
	return false
}

type Post struct {
	ID            uint       `gorm:"primaryKey" json:"id" example:"1"`
	Title         string     `gorm:"not null" json:"title" example:"Hello World"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug" example:"hello-world"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Excerpt       string     `gorm:"type:text" json:"excerpt"`
	FeaturedImage string     `json:"featuredImage"`
	Status        string     `gorm:"index;not null;default:DRAFT" json:"status" example:"DRAFT"`
	ViewCount     int        `gorm:"not null;default:0" json:"viewCount"`
	CategoryID    *uint      `json:"categoryId"`
	Category      *Category  `json:"category,omitempty"`
	Tags          []Tag      `gorm:"many2many:post_tags;" json:"tags,omitempty"`
	Meta          []PostMeta `gorm:"constraint:OnDelete:CASCADE" json:"meta,omitempty"`
	Media         []Media    `json:"media,omitempty"`
	PublishedAt   *time.Time `gorm:"index" json:"publishedAt"`

	// SEO overrides; empty means "derive from the natural fields".
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	CanonicalURL    string `json:"canonicalUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ReadingTime is computed per response, never stored.
	ReadingTime int `gorm:"-" json:"readingTime,omitempty"`
}

// PostTag is the join row between posts and tags. Association updates replace
// the full set rather than diffing it.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"postId"`
	TagID  uint `gorm:"primaryKey" json:"tagId"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
