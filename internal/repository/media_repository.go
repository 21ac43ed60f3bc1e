package repository

import (
	"weblog/internal/models"

	"gorm.io/gorm"
)

const defaultMediaLimit = 20

type MediaRepository interface {
	FindAll(postID *uint, page, limit int) ([]models.Media, Page, error)
	FindByID(id uint) (*models.Media, error)
	Create(media *models.Media) error
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) FindAll(postID *uint, page, limit int) ([]models.Media, Page, error) {
	limit = clampLimit(limit, defaultMediaLimit)

	base := func() *gorm.DB {
		q := r.db.Model(&models.Media{})
		if postID != nil {
			q = q.Where("post_id = ?", *postID)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, Page{}, err
	}

	pg := paginate(total, page, limit)

	var media []models.Media
	err := base().
		Order("created_at DESC").
		Offset((pg.Page - 1) * pg.Limit).
		Limit(pg.Limit).
		Preload("Post").
		Find(&media).Error

	return media, pg, err
}

func (r *mediaRepository) FindByID(id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.Preload("Post").First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Create(media *models.Media) error {
	return r.db.Omit("Post").Create(media).Error
}

func (r *mediaRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Media{}).Where("id = ?", id).Updates(fields).Error
}

func (r *mediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Media{}, id).Error
}
