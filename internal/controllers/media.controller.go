package controllers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"weblog/internal/models"
	"weblog/internal/repository"

	"github.com/gin-gonic/gin"
	_ "golang.org/x/image/webp"
)

// 5 MiB upload cap, matching the public API contract.
const maxUploadSize = 5 * 1024 * 1024

var allowedMimeTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.-]+`)

type MediaController struct {
	repo      repository.MediaRepository
	posts     repository.PostRepository
	uploadDir string
}

func NewMediaController(repo repository.MediaRepository, posts repository.PostRepository, uploadDir string) *MediaController {
	return &MediaController{repo: repo, posts: posts, uploadDir: uploadDir}
}

type UpdateMediaInput struct {
	Alt    *string `json:"alt"`
	PostID *uint   `json:"postId"`
}

// GetAllMedia godoc
// @Summary List media
// @Description List media files with pagination; ?postId= filters by owning post.
// @Tags media
// @Produce json
// @Router /media [get]
func (mc *MediaController) GetAllMedia(c *gin.Context) {
	var postID *uint
	if raw := queryInt(c, "postId", 0); raw > 0 {
		id := uint(raw)
		postID = &id
	}

	media, page, err := mc.repo.FindAll(postID, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		log.Printf("Error fetching media: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch media")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       media,
		"pagination": page,
	})
}

// GetMediaByID godoc
// @Summary Get a media file
// @Description Retrieve a media record by ID with its owning post.
// @Tags media
// @Produce json
// @Router /media/{id} [get]
func (mc *MediaController) GetMediaByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		abortInvalidID(c, "media")
		return
	}

	media, err := mc.repo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Media not found")
			return
		}
		log.Printf("Error fetching media %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch media")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    media,
	})
}

// UploadMedia godoc
// @Summary Upload a media file
// @Description Multipart upload (file, optional postId and alt). Image MIME allow-list, 5 MiB cap; the binary lands under a year/month directory. Requires auth headers.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Router /media [post]
func (mc *MediaController) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !isAllowedMimeType(mimeType) {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(allowedMimeTypes, ", ")))
		return
	}

	if fileHeader.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum size: %dMB", maxUploadSize/1024/1024))
		return
	}

	var postID *uint
	if raw := c.PostForm("postId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			abortInvalidID(c, "post")
			return
		}
		id := uint(parsed)
		if _, err := mc.posts.FindByID(id); err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusBadRequest, "Post not found")
				return
			}
			log.Printf("Error checking post %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to upload file")
			return
		}
		postID = &id
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening upload: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		log.Printf("Error reading upload: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}
	if len(data) > maxUploadSize {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("File too large. Maximum size: %dMB", maxUploadSize/1024/1024))
		return
	}

	now := time.Now()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		if parts := strings.SplitN(mimeType, "/", 2); len(parts) == 2 {
			ext = "." + parts[1]
		}
	}
	safeName := sanitizeFilename(strings.TrimSuffix(fileHeader.Filename, ext))
	filename := fmt.Sprintf("%s-%d%s", safeName, now.UnixMilli(), ext)

	relDir := fmt.Sprintf("%04d/%02d", now.Year(), int(now.Month()))
	dir := filepath.Join(mc.uploadDir, filepath.FromSlash(relDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Error creating upload directory: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		log.Printf("Error writing upload: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	width, height := probeDimensions(data, mimeType)

	storagePath := path.Join(relDir, filename)
	media := &models.Media{
		Filename: fileHeader.Filename,
		Path:     storagePath,
		URL:      "/uploads/" + storagePath,
		MimeType: mimeType,
		Size:     fileHeader.Size,
		Width:    width,
		Height:   height,
		Alt:      c.PostForm("alt"),
		PostID:   postID,
	}

	if err := mc.repo.Create(media); err != nil {
		log.Printf("Error creating media record: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    media,
		"message": "File uploaded successfully",
	})
}

// UpdateMedia godoc
// @Summary Update media metadata
// @Description Update alt text or re-link the owning post; a postId of 0 detaches it. Requires auth headers.
// @Tags media
// @Accept json
// @Produce json
// @Router /media/{id} [put]
func (mc *MediaController) UpdateMedia(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		abortInvalidID(c, "media")
		return
	}

	if _, err := mc.repo.FindByID(id); err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Media not found")
			return
		}
		log.Printf("Error fetching media %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update media")
		return
	}

	var input UpdateMediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	fields := map[string]interface{}{}
	if input.Alt != nil {
		fields["alt"] = *input.Alt
	}
	if input.PostID != nil {
		if *input.PostID == 0 {
			fields["post_id"] = nil
		} else {
			if _, err := mc.posts.FindByID(*input.PostID); err != nil {
				if isNotFound(err) {
					respondError(c, http.StatusBadRequest, "Post not found")
					return
				}
				log.Printf("Error checking post %d: %v", *input.PostID, err)
				respondError(c, http.StatusInternalServerError, "Failed to update media")
				return
			}
			fields["post_id"] = *input.PostID
		}
	}

	if len(fields) > 0 {
		if err := mc.repo.Update(id, fields); err != nil {
			log.Printf("Error updating media %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to update media")
			return
		}
	}

	updated, err := mc.repo.FindByID(id)
	if err != nil {
		log.Printf("Error reloading media %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update media")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Media updated successfully",
	})
}

// DeleteMedia godoc
// @Summary Delete a media file
// @Description Remove the stored file best-effort, then the database record. Requires auth headers.
// @Tags media
// @Produce json
// @Router /media/{id} [delete]
func (mc *MediaController) DeleteMedia(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		abortInvalidID(c, "media")
		return
	}

	media, err := mc.repo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Media not found")
			return
		}
		log.Printf("Error fetching media %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete media")
		return
	}

	// File removal failure is a warning; the record is still deleted.
	filePath := filepath.Join(mc.uploadDir, filepath.FromSlash(media.Path))
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not delete file %s: %v", media.Path, err)
	}

	if err := mc.repo.Delete(id); err != nil {
		log.Printf("Error deleting media %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete media")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Media deleted successfully",
	})
}

func isAllowedMimeType(mimeType string) bool {
	for _, allowed := range allowedMimeTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

// sanitizeFilename keeps the stored name shell- and URL-friendly.
func sanitizeFilename(name string) string {
	safe := unsafeFilenameRe.ReplaceAllString(name, "-")
	return strings.Trim(safe, "-")
}

// probeDimensions decodes just the image header. SVG and undecodable input
// yield no dimensions; the upload still succeeds.
func probeDimensions(data []byte, mimeType string) (*int, *int) {
	if mimeType == "image/svg+xml" {
		return nil, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}
	return &cfg.Width, &cfg.Height
}
