package mocks

import (
	"weblog/internal/models"
	"weblog/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockPostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) FindAll(filters repository.PostFilters) ([]models.Post, repository.Page, error) {
	args := m.Called(filters)
	return args.Get(0).([]models.Post), args.Get(1).(repository.Page), args.Error(2)
}

func (m *MockPostRepository) FindByIDOrSlug(idOrSlug string) (*models.Post, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) FindByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Create(post *models.Post, tagIDs []uint) error {
	args := m.Called(post, tagIDs)
	return args.Error(0)
}

func (m *MockPostRepository) Update(id uint, changes repository.PostChanges) error {
	args := m.Called(id, changes)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) IncrementViewCount(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) FindPublishedForSitemap() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) FindLatestPublished(limit int) ([]models.Post, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Post), args.Error(1)
}

// Shared MockCategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(filters repository.CategoryFilters) ([]models.Category, error) {
	args := m.Called(filters)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByIDOrSlug(idOrSlug string) (*models.Category, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(id uint, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountPosts(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) CountChildren(id uint) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) FindAllForSitemap() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

// Shared MockTagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindAll(sortBy string, limit int) ([]models.Tag, error) {
	args := m.Called(sortBy, limit)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByIDOrSlug(idOrSlug string) (*models.Tag, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByID(id uint) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindBySlug(slug string) (*models.Tag, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindPosts(tagID uint, page, limit int) ([]models.Post, repository.Page, error) {
	args := m.Called(tagID, page, limit)
	return args.Get(0).([]models.Post), args.Get(1).(repository.Page), args.Error(2)
}

func (m *MockTagRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) Update(id uint, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTagRepository) FindWithPublishedPosts() ([]models.Tag, error) {
	args := m.Called()
	return args.Get(0).([]models.Tag), args.Error(1)
}

// Shared MockMediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) FindAll(postID *uint, page, limit int) ([]models.Media, repository.Page, error) {
	args := m.Called(postID, page, limit)
	return args.Get(0).([]models.Media), args.Get(1).(repository.Page), args.Error(2)
}

func (m *MockMediaRepository) FindByID(id uint) (*models.Media, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaRepository) Create(media *models.Media) error {
	args := m.Called(media)
	return args.Error(0)
}

func (m *MockMediaRepository) Update(id uint, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockSettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindAll() ([]models.Setting, error) {
	args := m.Called()
	return args.Get(0).([]models.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindByKey(key string) (*models.Setting, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Setting), args.Error(1)
}

func (m *MockSettingRepository) Upsert(key, value string) (*models.Setting, error) {
	args := m.Called(key, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Setting), args.Error(1)
}

func (m *MockSettingRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}
