package repository

import (
	"strconv"

	"weblog/internal/models"

	"gorm.io/gorm"
)

const defaultTagPostLimit = 10

type TagRepository interface {
	FindAll(sortBy string, limit int) ([]models.Tag, error)
	FindByIDOrSlug(idOrSlug string) (*models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	FindBySlug(slug string) (*models.Tag, error)
	FindPosts(tagID uint, page, limit int) ([]models.Post, Page, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Create(tag *models.Tag) error
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	FindWithPublishedPosts() ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FindAll(sortBy string, limit int) ([]models.Tag, error) {
	order := "tags.name ASC"
	if sortBy == "postCount" {
		order = "post_count DESC"
	}

	q := r.db.Model(&models.Tag{}).
		Select("tags.*, COUNT(post_tags.post_id) AS post_count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Group("tags.id").
		Order(order)

	if limit > 0 {
		q = q.Limit(limit)
	}

	var tags []models.Tag
	err := q.Find(&tags).Error
	return tags, err
}

func (r *tagRepository) FindByIDOrSlug(idOrSlug string) (*models.Tag, error) {
	var tag models.Tag
	var err error
	if numericIDRe.MatchString(idOrSlug) {
		id, convErr := strconv.ParseUint(idOrSlug, 10, 32)
		if convErr != nil {
			return nil, gorm.ErrRecordNotFound
		}
		err = r.db.First(&tag, uint(id)).Error
	} else {
		err = r.db.Where("slug = ?", idOrSlug).First(&tag).Error
	}
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.Model(&models.PostTag{}).Where("tag_id = ?", tag.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	tag.PostCount = count
	return &tag, nil
}

func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindPosts lists the published posts carrying a tag, newest first.
func (r *tagRepository) FindPosts(tagID uint, page, limit int) ([]models.Post, Page, error) {
	limit = clampLimit(limit, defaultTagPostLimit)

	base := func() *gorm.DB {
		return r.db.Model(&models.Post{}).
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", tagID).
			Where("posts.status = ?", models.PostStatusPublished)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, Page{}, err
	}

	pg := paginate(total, page, limit)

	var posts []models.Post
	err := base().
		Order("posts.published_at DESC").
		Offset((pg.Page - 1) * pg.Limit).
		Limit(pg.Limit).
		Preload("Category").
		Preload("Tags").
		Find(&posts).Error

	return posts, pg, err
}

func (r *tagRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.Tag{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Tag{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a tag and cascades only its join rows; posts are untouched.
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}

// FindWithPublishedPosts returns tags attached to at least one published post.
func (r *tagRepository) FindWithPublishedPosts() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Tag{}).
		Select("DISTINCT tags.*").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("JOIN posts ON posts.id = post_tags.post_id").
		Where("posts.status = ?", models.PostStatusPublished).
		Find(&tags).Error
	return tags, err
}
