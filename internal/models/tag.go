package models

import (
	"time"
)

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"not null" json:"name" example:"golang"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug" example:"golang"`

	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// PostCount is filled by aggregate list queries, never stored.
	PostCount int64 `gorm:"->;-:migration" json:"postCount"`
}
