package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weblog/internal/controllers"
	"weblog/internal/models"
	"weblog/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupSettingControllerWithMock() (*controllers.SettingController, *mocks.MockSettingRepository) {
	mockRepo := new(mocks.MockSettingRepository)
	controller := controllers.NewSettingController(mockRepo)
	return controller, mockRepo
}

func TestGetSettingByKey(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		setupMock      func(*mocks.MockSettingRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "found",
			key:  "site_title",
			setupMock: func(m *mocks.MockSettingRepository) {
				m.On("FindByKey", "site_title").Return(&models.Setting{ID: 1, Key: "site_title", Value: "My Blog"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			key:  "missing",
			setupMock: func(m *mocks.MockSettingRepository) {
				m.On("FindByKey", "missing").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Setting not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupSettingControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/settings/:key", controller.GetSettingByKey)

			req := httptest.NewRequest(http.MethodGet, "/settings/"+tt.key, nil)
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

func TestUpsertSetting(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockSettingRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "successful upsert",
			requestBody: map[string]interface{}{"key": "site_title", "value": "My Blog"},
			setupMock: func(m *mocks.MockSettingRepository) {
				m.On("Upsert", "site_title", "My Blog").
					Return(&models.Setting{ID: 1, Key: "site_title", Value: "My Blog"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			requestBody:    map[string]interface{}{"value": "My Blog"},
			setupMock:      func(m *mocks.MockSettingRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupSettingControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.PUT("/settings", controller.UpsertSetting)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, response["error"])
				mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
			} else {
				assert.Equal(t, "Setting saved successfully", response["message"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteSetting(t *testing.T) {
	controller, mockRepo := setupSettingControllerWithMock()

	mockRepo.On("FindByKey", "site_title").Return(&models.Setting{ID: 1, Key: "site_title"}, nil)
	mockRepo.On("Delete", "site_title").Return(nil)

	router := setupTestRouter()
	router.DELETE("/settings/:key", controller.DeleteSetting)

	req := httptest.NewRequest(http.MethodDelete, "/settings/site_title", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Setting deleted successfully", response["message"])
	mockRepo.AssertExpectations(t)
}
