package models

import (
	"time"
)

type Category struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	Name        string     `gorm:"not null" json:"name" example:"Technology"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug" example:"technology"`
	Description string     `gorm:"type:text" json:"description"`
	ParentID    *uint      `json:"parentId"`
	Parent      *Category  `json:"parent,omitempty"`
	Children    []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Posts       []Post     `json:"posts,omitempty"`

	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// PostCount is filled by aggregate list queries, never stored.
	PostCount int64 `gorm:"->;-:migration" json:"postCount"`
}
