package repository

import (
	"regexp"
	"strconv"

	"weblog/internal/models"

	"gorm.io/gorm"
)

const (
	defaultPostLimit = 10

	// Posts above this view count qualify for the "featured" filter.
	featuredViewThreshold = 100
)

// All-digit identifiers are treated as numeric IDs; a slug that happens to be
// all digits is therefore unreachable by slug lookup.
var numericIDRe = regexp.MustCompile(`^\d+$`)

// PostFilters narrows a post list query. Zero values mean "no filter", except
// Status: an empty status defaults to PUBLISHED for public visibility.
type PostFilters struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string

	Status       string
	CategoryID   *uint
	CategorySlug string
	TagID        *uint
	TagSlug      string
	Search       string
	Featured     bool
}

// PostChanges describes a partial update. Fields are column assignments; nil
// TagIDs/Meta leave associations untouched, non-nil values replace the full
// set (delete-all-then-insert, inside one transaction).
type PostChanges struct {
	Fields map[string]interface{}
	TagIDs *[]uint
	Meta   *map[string]string
}

type PostRepository interface {
	FindAll(filters PostFilters) ([]models.Post, Page, error)
	FindByIDOrSlug(idOrSlug string) (*models.Post, error)
	FindByID(id uint) (*models.Post, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Create(post *models.Post, tagIDs []uint) error
	Update(id uint, changes PostChanges) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
	FindPublishedForSitemap() ([]models.Post, error)
	FindLatestPublished(limit int) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

var postSortColumns = map[string]string{
	"publishedAt": "posts.published_at",
	"createdAt":   "posts.created_at",
	"updatedAt":   "posts.updated_at",
	"title":       "posts.title",
	"viewCount":   "posts.view_count",
}

func postOrderClause(sortBy, sortOrder string) string {
	column, ok := postSortColumns[sortBy]
	if !ok {
		column = "posts.published_at"
	}
	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}

func (r *postRepository) applyFilters(q *gorm.DB, f PostFilters) *gorm.DB {
	if f.Status != "" {
		q = q.Where("posts.status = ?", f.Status)
	} else {
		q = q.Where("posts.status = ?", models.PostStatusPublished)
	}

	if f.CategoryID != nil {
		q = q.Where("posts.category_id = ?", *f.CategoryID)
	}
	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}

	if f.TagID != nil {
		q = q.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", *f.TagID)
	}
	if f.TagSlug != "" {
		q = q.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.slug = ?", f.TagSlug)
	}

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("posts.title ILIKE ? OR posts.content ILIKE ? OR posts.excerpt ILIKE ?",
			like, like, like)
	}

	if f.Featured {
		q = q.Where("posts.view_count > ?", featuredViewThreshold)
	}

	return q
}

func (r *postRepository) FindAll(f PostFilters) ([]models.Post, Page, error) {
	limit := clampLimit(f.Limit, defaultPostLimit)

	var total int64
	if err := r.applyFilters(r.db.Model(&models.Post{}), f).Count(&total).Error; err != nil {
		return nil, Page{}, err
	}

	pg := paginate(total, f.Page, limit)

	var posts []models.Post
	err := r.applyFilters(r.db.Model(&models.Post{}), f).
		Order(postOrderClause(f.SortBy, f.SortOrder)).
		Offset((pg.Page - 1) * pg.Limit).
		Limit(pg.Limit).
		Preload("Category").
		Preload("Tags").
		Find(&posts).Error

	return posts, pg, err
}

func (r *postRepository) FindByIDOrSlug(idOrSlug string) (*models.Post, error) {
	q := r.db.
		Preload("Category").
		Preload("Tags").
		Preload("Meta").
		Preload("Media")

	var post models.Post
	var err error
	if numericIDRe.MatchString(idOrSlug) {
		id, convErr := strconv.ParseUint(idOrSlug, 10, 32)
		if convErr != nil {
			return nil, gorm.ErrRecordNotFound
		}
		err = q.First(&post, uint(id)).Error
	} else {
		err = q.Where("slug = ?", idOrSlug).First(&post).Error
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Category").
		Preload("Tags").
		Preload("Meta").
		Preload("Media").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *postRepository) Create(post *models.Post, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Category", "Media").Create(post).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&models.PostTag{PostID: post.ID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *postRepository) Update(id uint, changes PostChanges) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(changes.Fields) > 0 {
			if err := tx.Model(&models.Post{}).Where("id = ?", id).
				Updates(changes.Fields).Error; err != nil {
				return err
			}
		}

		if changes.TagIDs != nil {
			if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
				return err
			}
			for _, tagID := range *changes.TagIDs {
				if err := tx.Create(&models.PostTag{PostID: id, TagID: tagID}).Error; err != nil {
					return err
				}
			}
		}

		if changes.Meta != nil {
			if err := tx.Where("post_id = ?", id).Delete(&models.PostMeta{}).Error; err != nil {
				return err
			}
			for key, value := range *changes.Meta {
				row := models.PostMeta{PostID: id, Key: key, Value: value}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostMeta{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

func (r *postRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *postRepository) FindPublishedForSitemap() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Select("id", "slug", "updated_at", "published_at").
		Where("status = ?", models.PostStatusPublished).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindLatestPublished(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Where("status = ?", models.PostStatusPublished).
		Order("published_at DESC").
		Limit(limit).
		Preload("Category").
		Preload("Tags").
		Find(&posts).Error
	return posts, err
}
