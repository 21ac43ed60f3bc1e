package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"weblog/internal/models"
	"weblog/internal/repository"
	"weblog/internal/seo"
	"weblog/internal/utils"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	repo repository.TagRepository
	seo  *seo.Generator
}

func NewTagController(repo repository.TagRepository, gen *seo.Generator) *TagController {
	return &TagController{repo: repo, seo: gen}
}

type CreateTagInput struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

type UpdateTagInput struct {
	Name            *string `json:"name"`
	Slug            *string `json:"slug"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

type BulkCreateTagsInput struct {
	Tags []string `json:"tags"`
}

// GetAllTags godoc
// @Summary List tags
// @Description List tags with post counts; ?sortBy=postCount orders by usage, ?limit= caps the result.
// @Tags tags
// @Produce json
// @Router /tags [get]
func (tc *TagController) GetAllTags(c *gin.Context) {
	tags, err := tc.repo.FindAll(c.DefaultQuery("sortBy", "name"), queryInt(c, "limit", 0))
	if err != nil {
		log.Printf("Error fetching tags: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tags,
	})
}

// GetTagByIDOrSlug godoc
// @Summary Get a tag
// @Description Retrieve a tag by numeric ID or slug with its published posts, paginated.
// @Tags tags
// @Produce json
// @Router /tags/{idOrSlug} [get]
func (tc *TagController) GetTagByIDOrSlug(c *gin.Context) {
	tag, err := tc.repo.FindByIDOrSlug(c.Param("idOrSlug"))
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Tag not found")
			return
		}
		log.Printf("Error fetching tag: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch tag")
		return
	}

	posts, page, err := tc.repo.FindPosts(tag.ID, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		log.Printf("Error fetching posts for tag %d: %v", tag.ID, err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"tag":   tag,
			"posts": posts,
		},
		"pagination": page,
		"seo": gin.H{
			"metadata": tc.seo.ForTag(tag),
		},
	})
}

// CreateTag godoc
// @Summary Create a tag
// @Description Create a tag; derives the slug from the name when not supplied. Requires auth headers.
// @Tags tags
// @Accept json
// @Produce json
// @Router /tags [post]
func (tc *TagController) CreateTag(c *gin.Context) {
	var input CreateTagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	if input.Name == "" {
		respondError(c, http.StatusBadRequest, "Name is required")
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}

	exists, err := tc.repo.SlugExists(slug, 0)
	if err != nil {
		log.Printf("Error checking tag slug: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create tag")
		return
	}
	if exists {
		respondError(c, http.StatusBadRequest, "A tag with this slug already exists")
		return
	}

	tag := &models.Tag{
		Name:            input.Name,
		Slug:            slug,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}

	if err := tc.repo.Create(tag); err != nil {
		log.Printf("Error creating tag: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create tag")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    tag,
		"message": "Tag created successfully",
	})
}

// BulkCreateTags godoc
// @Summary Bulk-create tags
// @Description Create multiple tags by name; names whose slug already exists are reported back unchanged. Requires auth headers.
// @Tags tags
// @Accept json
// @Produce json
// @Router /tags/bulk [post]
func (tc *TagController) BulkCreateTags(c *gin.Context) {
	var input BulkCreateTagsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	if len(input.Tags) == 0 {
		respondError(c, http.StatusBadRequest, "Tags array is required")
		return
	}

	var created, existing []models.Tag
	for _, name := range input.Tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		slug := utils.Slugify(name)
		found, err := tc.repo.FindBySlug(slug)
		if err == nil {
			existing = append(existing, *found)
			continue
		}
		if !isNotFound(err) {
			log.Printf("Error checking tag slug %q: %v", slug, err)
			respondError(c, http.StatusInternalServerError, "Failed to create tags")
			return
		}

		tag := models.Tag{Name: name, Slug: slug}
		if err := tc.repo.Create(&tag); err != nil {
			log.Printf("Error creating tag %q: %v", name, err)
			respondError(c, http.StatusInternalServerError, "Failed to create tags")
			return
		}
		created = append(created, tag)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"created":  created,
			"existing": existing,
		},
		"message": fmt.Sprintf("Created %d tags, %d already existed", len(created), len(existing)),
	})
}

// UpdateTag godoc
// @Summary Update a tag
// @Description Partial update with slug conflict checking. Requires auth headers.
// @Tags tags
// @Accept json
// @Produce json
// @Router /tags/{id} [put]
func (tc *TagController) UpdateTag(c *gin.Context) {
	id, ok := paramID(c, "idOrSlug")
	if !ok {
		abortInvalidID(c, "tag")
		return
	}

	existing, err := tc.repo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Tag not found")
			return
		}
		log.Printf("Error fetching tag %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update tag")
		return
	}

	var input UpdateTagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	fields := map[string]interface{}{}

	newSlug := ""
	if input.Slug != nil && *input.Slug != existing.Slug {
		newSlug = *input.Slug
	} else if input.Slug == nil && input.Name != nil && *input.Name != existing.Name {
		if derived := utils.Slugify(*input.Name); derived != existing.Slug {
			newSlug = derived
		}
	}
	if newSlug != "" {
		exists, err := tc.repo.SlugExists(newSlug, id)
		if err != nil {
			log.Printf("Error checking tag slug: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to update tag")
			return
		}
		if exists {
			respondError(c, http.StatusBadRequest, "A tag with this slug already exists")
			return
		}
		fields["slug"] = newSlug
	}

	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.MetaTitle != nil {
		fields["meta_title"] = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		fields["meta_description"] = *input.MetaDescription
	}

	if len(fields) > 0 {
		if err := tc.repo.Update(id, fields); err != nil {
			log.Printf("Error updating tag %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to update tag")
			return
		}
	}

	updated, err := tc.repo.FindByID(id)
	if err != nil {
		log.Printf("Error reloading tag %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Tag updated successfully",
	})
}

// DeleteTag godoc
// @Summary Delete a tag
// @Description Delete a tag; only its join rows cascade, posts stay intact. Requires auth headers.
// @Tags tags
// @Produce json
// @Router /tags/{id} [delete]
func (tc *TagController) DeleteTag(c *gin.Context) {
	id, ok := paramID(c, "idOrSlug")
	if !ok {
		abortInvalidID(c, "tag")
		return
	}

	if _, err := tc.repo.FindByID(id); err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Tag not found")
			return
		}
		log.Printf("Error fetching tag %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete tag")
		return
	}

	if err := tc.repo.Delete(id); err != nil {
		log.Printf("Error deleting tag %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tag deleted successfully",
	})
}
