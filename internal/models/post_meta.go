package models

// PostMeta is an open-ended key/value annotation attached to a post, e.g. a
// "keywords" entry consumed by the SEO generator. Rows are owned by the post
// and replaced wholesale on update.
type PostMeta struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	PostID uint   `gorm:"uniqueIndex:idx_post_meta_key;not null" json:"postId"`
	Key    string `gorm:"uniqueIndex:idx_post_meta_key;not null" json:"key" example:"keywords"`
	Value  string `gorm:"type:text" json:"value"`
}

func (PostMeta) TableName() string {
	return "post_meta"
}
