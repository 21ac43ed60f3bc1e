package controllers

import (
	"log"
	"net/http"
	"strconv"

	"weblog/internal/models"
	"weblog/internal/repository"
	"weblog/internal/seo"
	"weblog/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	repo repository.CategoryRepository
	seo  *seo.Generator
}

func NewCategoryController(repo repository.CategoryRepository, gen *seo.Generator) *CategoryController {
	return &CategoryController{repo: repo, seo: gen}
}

type CreateCategoryInput struct {
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	ParentID        *uint  `json:"parentId"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// UpdateCategoryInput uses partial-update semantics; a parentId of 0 detaches
// the category from its parent.
type UpdateCategoryInput struct {
	Name            *string `json:"name"`
	Slug            *string `json:"slug"`
	Description     *string `json:"description"`
	ParentID        *uint   `json:"parentId"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

// GetAllCategories godoc
// @Summary List categories
// @Description List categories with post counts. ?parentId= filters by parent ("null" for roots); ?includeChildren=true preloads children.
// @Tags categories
// @Produce json
// @Router /categories [get]
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	filters := repository.CategoryFilters{
		IncludeChildren: c.Query("includeChildren") == "true",
	}

	if raw, supplied := c.GetQuery("parentId"); supplied {
		if raw == "" || raw == "null" {
			filters.RootsOnly = true
		} else if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			parentID := uint(id)
			filters.ParentID = &parentID
		}
	}

	categories, err := cc.repo.FindAll(filters)
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

// GetCategoryByIDOrSlug godoc
// @Summary Get a category
// @Description Retrieve a category by numeric ID or slug, with parent, children and recent published posts.
// @Tags categories
// @Produce json
// @Router /categories/{idOrSlug} [get]
func (cc *CategoryController) GetCategoryByIDOrSlug(c *gin.Context) {
	category, err := cc.repo.FindByIDOrSlug(c.Param("idOrSlug"))
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("Error fetching category: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    category,
		"seo": gin.H{
			"metadata":    cc.seo.ForCategory(category),
			"breadcrumbs": cc.seo.BreadcrumbJSONLD(cc.breadcrumbs(category)),
		},
	})
}

func (cc *CategoryController) breadcrumbs(category *models.Category) []seo.BreadcrumbItem {
	items := []seo.BreadcrumbItem{{Name: "Home", URL: "/"}}
	if category.Parent != nil {
		items = append(items, seo.BreadcrumbItem{
			Name: category.Parent.Name,
			URL:  "/category/" + category.Parent.Slug,
		})
	}
	return append(items, seo.BreadcrumbItem{Name: category.Name, URL: "/category/" + category.Slug})
}

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category; derives the slug from the name when not supplied. Requires auth headers.
// @Tags categories
// @Accept json
// @Produce json
// @Router /categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
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

	exists, err := cc.repo.SlugExists(slug, 0)
	if err != nil {
		log.Printf("Error checking category slug: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}
	if exists {
		respondError(c, http.StatusBadRequest, "A category with this slug already exists")
		return
	}

	if input.ParentID != nil {
		if _, err := cc.repo.FindByID(*input.ParentID); err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusBadRequest, "Parent category not found")
				return
			}
			log.Printf("Error checking parent category: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to create category")
			return
		}
	}

	category := &models.Category{
		Name:            input.Name,
		Slug:            slug,
		Description:     input.Description,
		ParentID:        input.ParentID,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
	}

	if err := cc.repo.Create(category); err != nil {
		log.Printf("Error creating category: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    category,
		"message": "Category created successfully",
	})
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Partial update; a category cannot become its own parent. Requires auth headers.
// @Tags categories
// @Accept json
// @Produce json
// @Router /categories/{id} [put]
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "idOrSlug")
	if !ok {
		abortInvalidID(c, "category")
		return
	}

	existing, err := cc.repo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("Error fetching category %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	var input UpdateCategoryInput
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
		exists, err := cc.repo.SlugExists(newSlug, id)
		if err != nil {
			log.Printf("Error checking category slug: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to update category")
			return
		}
		if exists {
			respondError(c, http.StatusBadRequest, "A category with this slug already exists")
			return
		}
		fields["slug"] = newSlug
	}

	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.MetaTitle != nil {
		fields["meta_title"] = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		fields["meta_description"] = *input.MetaDescription
	}

	if input.ParentID != nil {
		switch {
		case *input.ParentID == 0:
			fields["parent_id"] = nil
		case *input.ParentID == id:
			respondError(c, http.StatusBadRequest, "A category cannot be its own parent")
			return
		default:
			if _, err := cc.repo.FindByID(*input.ParentID); err != nil {
				if isNotFound(err) {
					respondError(c, http.StatusBadRequest, "Parent category not found")
					return
				}
				log.Printf("Error checking parent category: %v", err)
				respondError(c, http.StatusInternalServerError, "Failed to update category")
				return
			}
			fields["parent_id"] = *input.ParentID
		}
	}

	if len(fields) > 0 {
		if err := cc.repo.Update(id, fields); err != nil {
			log.Printf("Error updating category %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "Failed to update category")
			return
		}
	}

	updated, err := cc.repo.FindByIDOrSlug(strconv.FormatUint(uint64(id), 10))
	if err != nil {
		log.Printf("Error reloading category %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Category updated successfully",
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Refused while the category still owns posts or child categories. Requires auth headers.
// @Tags categories
// @Produce json
// @Router /categories/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "idOrSlug")
	if !ok {
		abortInvalidID(c, "category")
		return
	}

	if _, err := cc.repo.FindByID(id); err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("Error fetching category %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	postCount, err := cc.repo.CountPosts(id)
	if err != nil {
		log.Printf("Error counting posts for category %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if postCount > 0 {
		respondError(c, http.StatusBadRequest, "Cannot delete category with posts. Remove posts first or reassign them.")
		return
	}

	childCount, err := cc.repo.CountChildren(id)
	if err != nil {
		log.Printf("Error counting children for category %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if childCount > 0 {
		respondError(c, http.StatusBadRequest, "Cannot delete category with subcategories. Delete or move subcategories first.")
		return
	}

	if err := cc.repo.Delete(id); err != nil {
		log.Printf("Error deleting category %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted successfully",
	})
}
