package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weblog/internal/controllers"
	"weblog/internal/models"
	"weblog/internal/repository"
	"weblog/internal/seo"
	"weblog/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testSEOGenerator() *seo.Generator {
	return seo.NewGenerator("https://example.com", "Test Site", "A test site")
}

func setupPostControllerWithMock() (*controllers.PostController, *mocks.MockPostRepository) {
	mockRepo := new(mocks.MockPostRepository)
	controller := controllers.NewPostController(mockRepo, testSEOGenerator(), "testdata/uploads")
	return controller, mockRepo
}

func TestNewPostController(t *testing.T) {
	controller, _ := setupPostControllerWithMock()
	assert.NotNil(t, controller)
}

func TestGetAllPosts(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockPostRepository)
		expectedStatus int
	}{
		{
			name:  "successful fetch with pagination",
			query: "?page=1&limit=10",
			setupMock: func(m *mocks.MockPostRepository) {
				posts := []models.Post{{ID: 1, Title: "Hello World", Slug: "hello-world", Status: models.PostStatusPublished}}
				page := repository.Page{Page: 1, Limit: 10, Total: 1, TotalPages: 1, HasMore: false}
				m.On("FindAll", mock.AnythingOfType("repository.PostFilters")).Return(posts, page, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "repository error",
			query: "",
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("FindAll", mock.AnythingOfType("repository.PostFilters")).
					Return([]models.Post{}, repository.Page{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupPostControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/posts", controller.GetAllPosts)

			req := httptest.NewRequest(http.MethodGet, "/posts"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, response["success"])
				assert.NotNil(t, response["pagination"])
			} else {
				assert.Equal(t, false, response["success"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetAllPostsFilterParsing(t *testing.T) {
	controller, mockRepo := setupPostControllerWithMock()

	mockRepo.On("FindAll", mock.MatchedBy(func(f repository.PostFilters) bool {
		return f.Status == "DRAFT" && f.CategorySlug == "technology" && f.Search == "go" && f.Featured
	})).Return([]models.Post{}, repository.Page{Page: 1, Limit: 10}, nil)

	router := setupTestRouter()
	router.GET("/posts", controller.GetAllPosts)

	req := httptest.NewRequest(http.MethodGet, "/posts?status=DRAFT&categorySlug=technology&search=go&featured=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetPostByIDOrSlug(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockPostRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "found by slug",
			path: "/posts/hello-world",
			setupMock: func(m *mocks.MockPostRepository) {
				post := &models.Post{ID: 1, Title: "Hello World", Slug: "hello-world", Content: "some words here", Status: models.PostStatusPublished}
				m.On("FindByIDOrSlug", "hello-world").Return(post, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "view counter incremented",
			path: "/posts/hello-world?view=true",
			setupMock: func(m *mocks.MockPostRepository) {
				post := &models.Post{ID: 1, Title: "Hello World", Slug: "hello-world", Content: "some words here", Status: models.PostStatusPublished}
				m.On("FindByIDOrSlug", "hello-world").Return(post, nil)
				m.On("IncrementViewCount", uint(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/posts/missing",
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("FindByIDOrSlug", "missing").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Post not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupPostControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/posts/:idOrSlug", controller.GetPostByIDOrSlug)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, response["error"])
			} else {
				assert.Equal(t, true, response["success"])
				assert.NotNil(t, response["seo"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockPostRepository)
		expectedStatus int
		expectedMsg    string
		expectedError  string
	}{
		{
			name: "successful creation derives slug and excerpt",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": "<p>Some content for the new post.</p>",
			},
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("SlugExists", "hello-world", uint(0)).Return(false, nil)
				m.On("Create", mock.MatchedBy(func(p *models.Post) bool {
					return p.Slug == "hello-world" && p.Status == models.PostStatusDraft && p.Excerpt != ""
				}), []uint(nil)).Return(nil)
				m.On("FindByID", mock.AnythingOfType("uint")).
					Return(&models.Post{ID: 1, Title: "Hello World", Slug: "hello-world"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Post created successfully",
		},
		{
			name: "publishing stamps publishedAt",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": "body",
				"status":  "PUBLISHED",
			},
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("SlugExists", "hello-world", uint(0)).Return(false, nil)
				m.On("Create", mock.MatchedBy(func(p *models.Post) bool {
					return p.Status == models.PostStatusPublished && p.PublishedAt != nil
				}), []uint(nil)).Return(nil)
				m.On("FindByID", mock.AnythingOfType("uint")).
					Return(&models.Post{ID: 1, Slug: "hello-world"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Post created successfully",
		},
		{
			name:           "missing title",
			requestBody:    map[string]interface{}{"content": "body"},
			setupMock:      func(m *mocks.MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Title and content are required",
		},
		{
			name: "invalid status",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": "body",
				"status":  "LIVE",
			},
			setupMock:      func(m *mocks.MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid post status",
		},
		{
			name: "duplicate slug",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": "body",
			},
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("SlugExists", "hello-world", uint(0)).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "A post with this slug already exists",
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			setupMock:      func(m *mocks.MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupPostControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/posts", controller.CreatePost)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, response["message"])
			}
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, response["error"])
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdatePost(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockPostRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "first publish stamps publishedAt",
			path:        "/posts/1",
			requestBody: map[string]interface{}{"status": "PUBLISHED"},
			setupMock: func(m *mocks.MockPostRepository) {
				draft := &models.Post{ID: 1, Title: "Hello World", Slug: "hello-world", Status: models.PostStatusDraft}
				m.On("FindByID", uint(1)).Return(draft, nil)
				m.On("Update", uint(1), mock.MatchedBy(func(ch repository.PostChanges) bool {
					_, stamped := ch.Fields["published_at"]
					return stamped && ch.Fields["status"] == models.PostStatusPublished
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "re-publishing keeps the original publishedAt",
			path:        "/posts/1",
			requestBody: map[string]interface{}{"status": "PUBLISHED"},
			setupMock: func(m *mocks.MockPostRepository) {
				already := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
				post := &models.Post{ID: 1, Title: "Hello World", Slug: "hello-world", Status: models.PostStatusPublished, PublishedAt: &already}
				m.On("FindByID", uint(1)).Return(post, nil)
				m.On("Update", uint(1), mock.MatchedBy(func(ch repository.PostChanges) bool {
					_, stamped := ch.Fields["published_at"]
					return !stamped && ch.Fields["status"] == models.PostStatusPublished
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "tag set replacement is passed through",
			path:        "/posts/1",
			requestBody: map[string]interface{}{"tagIds": []uint{2, 3}},
			setupMock: func(m *mocks.MockPostRepository) {
				post := &models.Post{ID: 1, Title: "Hello World", Slug: "hello-world", Status: models.PostStatusDraft}
				m.On("FindByID", uint(1)).Return(post, nil)
				m.On("Update", uint(1), mock.MatchedBy(func(ch repository.PostChanges) bool {
					return ch.TagIDs != nil && len(*ch.TagIDs) == 2 && (*ch.TagIDs)[0] == 2 && (*ch.TagIDs)[1] == 3
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "detach category",
			path:        "/posts/1",
			requestBody: map[string]interface{}{"categoryId": 0},
			setupMock: func(m *mocks.MockPostRepository) {
				post := &models.Post{ID: 1, Title: "Hello World", Slug: "hello-world", Status: models.PostStatusDraft}
				m.On("FindByID", uint(1)).Return(post, nil)
				m.On("Update", uint(1), mock.MatchedBy(func(ch repository.PostChanges) bool {
					v, present := ch.Fields["category_id"]
					return present && v == nil
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "not found",
			path:        "/posts/99",
			requestBody: map[string]interface{}{"title": "New"},
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Post not found",
		},
		{
			name:           "non-numeric id",
			path:           "/posts/hello-world",
			requestBody:    map[string]interface{}{"title": "New"},
			setupMock:      func(m *mocks.MockPostRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid post ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupPostControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.PUT("/posts/:idOrSlug", controller.UpdatePost)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPut, tt.path, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, response["error"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mocks.MockPostRepository)
		expectedStatus int
		expectedMsg    string
		expectedError  string
	}{
		{
			name: "successful deletion",
			path: "/posts/1",
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("FindByID", uint(1)).Return(&models.Post{ID: 1, Slug: "hello-world"}, nil)
				m.On("Delete", uint(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Post deleted successfully",
		},
		{
			name: "not found",
			path: "/posts/99",
			setupMock: func(m *mocks.MockPostRepository) {
				m.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Post not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupPostControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.DELETE("/posts/:idOrSlug", controller.DeletePost)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, response["message"])
			}
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, response["error"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
