package models

import (
	"time"
)

// Setting is a global key/value configuration entry with no relations.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"uniqueIndex;not null" json:"key" example:"site_tagline"`
	Value string `gorm:"type:text" json:"value"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
