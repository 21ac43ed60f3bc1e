package controllers

import (
	"log"
	"net/http"

	"weblog/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	repo repository.SettingRepository
}

func NewSettingController(repo repository.SettingRepository) *SettingController {
	return &SettingController{repo: repo}
}

type UpsertSettingInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetAllSettings godoc
// @Summary List settings
// @Description Return all site settings ordered by key.
// @Tags settings
// @Produce json
// @Router /settings [get]
func (sc *SettingController) GetAllSettings(c *gin.Context) {
	settings, err := sc.repo.FindAll()
	if err != nil {
		log.Printf("Error fetching settings: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

// GetSettingByKey godoc
// @Summary Get a setting
// @Description Retrieve a single setting by its key.
// @Tags settings
// @Produce json
// @Router /settings/{key} [get]
func (sc *SettingController) GetSettingByKey(c *gin.Context) {
	setting, err := sc.repo.FindByKey(c.Param("key"))
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Setting not found")
			return
		}
		log.Printf("Error fetching setting: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch setting")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    setting,
	})
}

// UpsertSetting godoc
// @Summary Create or update a setting
// @Description Insert the key/value pair, replacing the value when the key exists. Requires auth headers.
// @Tags settings
// @Accept json
// @Produce json
// @Router /settings [put]
func (sc *SettingController) UpsertSetting(c *gin.Context) {
	var input UpsertSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	if input.Key == "" {
		respondError(c, http.StatusBadRequest, "Key is required")
		return
	}

	setting, err := sc.repo.Upsert(input.Key, input.Value)
	if err != nil {
		log.Printf("Error upserting setting %q: %v", input.Key, err)
		respondError(c, http.StatusInternalServerError, "Failed to save setting")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    setting,
		"message": "Setting saved successfully",
	})
}

// DeleteSetting godoc
// @Summary Delete a setting
// @Description Remove a setting by key. Requires auth headers.
// @Tags settings
// @Produce json
// @Router /settings/{key} [delete]
func (sc *SettingController) DeleteSetting(c *gin.Context) {
	key := c.Param("key")

	if _, err := sc.repo.FindByKey(key); err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Setting not found")
			return
		}
		log.Printf("Error fetching setting: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete setting")
		return
	}

	if err := sc.repo.Delete(key); err != nil {
		log.Printf("Error deleting setting %q: %v", key, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete setting")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Setting deleted successfully",
	})
}
