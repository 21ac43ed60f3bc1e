package repository

import (
	"strconv"

	"weblog/internal/models"

	"gorm.io/gorm"
)

// CategoryFilters narrows a category list. ParentID filters by parent;
// RootsOnly selects categories without a parent.
type CategoryFilters struct {
	ParentID        *uint
	RootsOnly       bool
	IncludeChildren bool
}

type CategoryRepository interface {
	FindAll(filters CategoryFilters) ([]models.Category, error)
	FindByIDOrSlug(idOrSlug string) (*models.Category, error)
	FindByID(id uint) (*models.Category, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Create(category *models.Category) error
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	CountPosts(id uint) (int64, error)
	CountChildren(id uint) (int64, error)
	FindAllForSitemap() ([]models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindAll(f CategoryFilters) ([]models.Category, error) {
	q := r.db.Model(&models.Category{}).
		Select("categories.*, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.category_id = categories.id").
		Group("categories.id").
		Order("categories.name ASC").
		Preload("Parent")

	if f.RootsOnly {
		q = q.Where("categories.parent_id IS NULL")
	} else if f.ParentID != nil {
		q = q.Where("categories.parent_id = ?", *f.ParentID)
	}

	if f.IncludeChildren {
		q = q.Preload("Children")
	}

	var categories []models.Category
	err := q.Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindByIDOrSlug(idOrSlug string) (*models.Category, error) {
	q := r.db.
		Preload("Parent").
		Preload("Children").
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.PostStatusPublished).
				Order("published_at DESC").
				Limit(10)
		}).
		Preload("Posts.Tags")

	var category models.Category
	var err error
	if numericIDRe.MatchString(idOrSlug) {
		id, convErr := strconv.ParseUint(idOrSlug, 10, 32)
		if convErr != nil {
			return nil, gorm.ErrRecordNotFound
		}
		err = q.First(&category, uint(id)).Error
	} else {
		err = q.Where("slug = ?", idOrSlug).First(&category).Error
	}
	if err != nil {
		return nil, err
	}

	if category.PostCount, err = r.CountPosts(category.ID); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Omit("Parent", "Children", "Posts").Create(category).Error
}

func (r *categoryRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

func (r *categoryRepository) CountPosts(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

func (r *categoryRepository) CountChildren(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

func (r *categoryRepository) FindAllForSitemap() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Select("id", "slug", "updated_at").Find(&categories).Error
	return categories, err
}
