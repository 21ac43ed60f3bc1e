package models

import (
	"time"
)

type Media struct {
	ID       uint   `gorm:"primaryKey" json:"id" example:"1"`
	Filename string `gorm:"not null" json:"filename" example:"cover.jpg"`
	Path     string `gorm:"not null" json:"path" example:"2026/09/cover-1756712345678.jpg"`
	URL      string `gorm:"not null" json:"url" example:"/uploads/2026/09/cover-1756712345678.jpg"`
	MimeType string `gorm:"not null" json:"mimeType" example:"image/jpeg"`
	Size     int64  `gorm:"not null" json:"size"`

	// Image dimensions, probed best-effort at upload time.
	Width  *int `json:"width"`
	Height *int `json:"height"`

	Alt    string `json:"alt"`
	PostID *uint  `json:"postId"`
	Post   *Post  `json:"post,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
