package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"weblog/internal/models"
	"weblog/internal/repository"
	"weblog/internal/seo"
	"weblog/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	repo      repository.PostRepository
	seo       *seo.Generator
	uploadDir string
}

func NewPostController(repo repository.PostRepository, gen *seo.Generator, uploadDir string) *PostController {
	return &PostController{repo: repo, seo: gen, uploadDir: uploadDir}
}

type CreatePostInput struct {
	Title           string            `json:"title"`
	Slug            string            `json:"slug"`
	Content         string            `json:"content"`
	Excerpt         string            `json:"excerpt"`
	FeaturedImage   string            `json:"featuredImage"`
	Status          string            `json:"status"`
	CategoryID      *uint             `json:"categoryId"`
	TagIDs          []uint            `json:"tagIds"`
	Meta            map[string]string `json:"meta"`
	MetaTitle       string            `json:"metaTitle"`
	MetaDescription string            `json:"metaDescription"`
	CanonicalURL    string            `json:"canonicalUrl"`
	PublishedAt     *time.Time        `json:"publishedAt"`
}

// UpdatePostInput carries partial-update semantics: nil pointers leave the
// field untouched. TagIDs/Meta replace the full association set when present.
// A categoryId of 0 detaches the post from its category.
type UpdatePostInput struct {
	Title           *string            `json:"title"`
	Slug            *string            `json:"slug"`
	Content         *string            `json:"content"`
	Excerpt         *string            `json:"excerpt"`
	FeaturedImage   *string            `json:"featuredImage"`
	Status          *string            `json:"status"`
	CategoryID      *uint              `json:"categoryId"`
	TagIDs          *[]uint            `json:"tagIds"`
	Meta            *map[string]string `json:"meta"`
	MetaTitle       *string            `json:"metaTitle"`
	MetaDescription *string            `json:"metaDescription"`
	CanonicalURL    *string            `json:"canonicalUrl"`
	PublishedAt     *time.Time         `json:"publishedAt"`
}

// GetAllPosts godoc
// @Summary List posts
// @Description List posts with pagination, sorting and filtering. Defaults to PUBLISHED posts only.
// @Tags posts
// @Produce json
// @Router /posts [get]
func (pc *PostController) GetAllPosts(c *gin.Context) {
	filters := repository.PostFilters{
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 0),
		SortBy:       c.DefaultQuery("sortBy", "publishedAt"),
		SortOrder:    c.DefaultQuery("sortOrder", "desc"),
		Status:       c.Query("status"),
		CategorySlug: c.Query("categorySlug"),
		TagSlug:      c.Query("tagSlug"),
		Search:       c.Query("search"),
		Featured:     c.Query("featured") == "true",
	}

	if raw := queryInt(c, "categoryId", 0); raw > 0 {
		id := uint(raw)
		filters.CategoryID = &id
	}
	if raw := queryInt(c, "tagId", 0); raw > 0 {
		id := uint(raw)
		filters.TagID = &id
	}

	posts, page, err := pc.repo.FindAll(filters)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       posts,
		"pagination": page,
	})
}

// GetPostByIDOrSlug godoc
// @Summary Get a post
// @Description Retrieve a single post by numeric ID or slug, with relations and SEO metadata. ?view=true increments the view counter.
// @Tags posts
// @Produce json
// @Router /posts/{idOrSlug} [get]
func (pc *PostController) GetPostByIDOrSlug(c *gin.Context) {
	post, err := pc.repo.FindByIDOrSlug(c.Param("idOrSlug"))
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("Error fetching post: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	if c.Query("view") == "true" {
		if err := pc.repo.IncrementViewCount(post.ID); err != nil {
			log.Printf("Failed to increment view count for post %d: %v", post.ID, err)
		}
	}

	post.ReadingTime = utils.ReadingTime(post.Content)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
		"seo": gin.H{
			"metadata":    pc.seo.ForPost(post),
			"article":     pc.seo.ArticleJSONLD(post),
			"breadcrumbs": pc.seo.BreadcrumbJSONLD(pc.breadcrumbs(post)),
		},
	})
}

// breadcrumbs walks from home through the parent category to the post.
func (pc *PostController) breadcrumbs(post *models.Post) []seo.BreadcrumbItem {
	items := []seo.BreadcrumbItem{{Name: "Home", URL: "/"}}
	if post.Category != nil {
		items = append(items, seo.BreadcrumbItem{
			Name: post.Category.Name,
			URL:  "/category/" + post.Category.Slug,
		})
	}
	return append(items, seo.BreadcrumbItem{Name: post.Title, URL: "/posts/" + post.Slug})
}

// CreatePost godoc
// @Summary Create a post
// @Description Create a post; derives slug and excerpt when not supplied. Requires X-API-Key and X-TOTP-Code headers.
// @Tags posts
// @Accept json
// @Produce json
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	if input.Title == "" || input.Content == "" {
		respondError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	status := input.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !models.ValidPostStatus(status) {
		respondError(c, http.StatusBadRequest, "Invalid post status")
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}

	exists, err := pc.repo.SlugExists(slug, 0)
	if err != nil {
		log.Printf("Error checking post slug: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}
	if exists {
		respondError(c, http.StatusBadRequest, "A post with this slug already exists")
		return
	}

	excerpt := input.Excerpt
	if excerpt == "" {
		excerpt = utils.GenerateExcerpt(input.Content, excerptLength)
	}

	publishedAt := input.PublishedAt
	if publishedAt == nil && status == models.PostStatusPublished {
		now := time.Now()
		publishedAt = &now
	}

	post := &models.Post{
		Title:           input.Title,
		Slug:            slug,
		Content:         input.Content,
		Excerpt:         excerpt,
		FeaturedImage:   input.FeaturedImage,
		Status:          status,
		CategoryID:      input.CategoryID,
		PublishedAt:     publishedAt,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		CanonicalURL:    input.CanonicalURL,
	}
	for key, value := range input.Meta {
		post.Meta = append(post.Meta, models.PostMeta{Key: key, Value: value})
	}

	if err := pc.repo.Create(post, input.TagIDs); err != nil {
		log.Printf("Error creating post: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	created, err := pc.repo.FindByID(post.ID)
	if err != nil {
		log.Printf("Error reloading post %d: %v", post.ID, err)
		respondError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    created,
		"message": "Post created successfully",
	})
}

// UpdatePost godoc
// @Summary Update a post
// @Description Partial update; only supplied fields change. First transition to PUBLISHED stamps publishedAt. Requires auth headers.
// @Tags posts
// @Accept json
// @Produce json
// @Router /posts/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	id, ok := paramID(c, "idOrSlug")
	if !ok {
		abortInvalidID(c, "post")
		return
	}

	existing, err := pc.repo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("Error fetching post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	var input UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data")
		return
	}

	fields := map[string]interface{}{}

	newSlug := ""
	if input.Slug != nil && *input.Slug != existing.Slug {
		newSlug = *input.Slug
	} else if input.Slug == nil && input.Title != nil && *input.Title != existing.Title {
		if derived := utils.Slugify(*input.Title); derived != existing.Slug {
			newSlug = derived
		}
	}
	if newSlug != "" {
		exists, err := pc.repo.SlugExists(newSlug, id)
		if err != nil {
			log.Printf("Error checking post slug: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to update post")
			return
		}
		if exists {
			respondError(c, http.StatusBadRequest, "A post with this slug already exists")
			return
		}
		fields["slug"] = newSlug
	}

	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
		if input.Excerpt == nil {
			fields["excerpt"] = utils.GenerateExcerpt(*input.Content, excerptLength)
		}
	}
	if input.Excerpt != nil {
		fields["excerpt"] = *input.Excerpt
	}
	if input.FeaturedImage != nil {
		fields["featured_image"] = *input.FeaturedImage
	}
	if input.MetaTitle != nil {
		fields["meta_title"] = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		fields["meta_description"] = *input.MetaDescription
	}
	if input.CanonicalURL != nil {
		fields["canonical_url"] = *input.CanonicalURL
	}

	if input.Status != nil {
		if !models.ValidPostStatus(*input.Status) {
			respondError(c, http.StatusBadRequest, "Invalid post status")
			return
		}
		fields["status"] = *input.Status
		// publishedAt is stamped exactly once, on the first transition into
		// PUBLISHED, unless the caller overrides it explicitly.
		if *input.Status == models.PostStatusPublished && existing.PublishedAt == nil {
			fields["published_at"] = time.Now()
		}
	}
	if input.PublishedAt != nil {
		fields["published_at"] = *input.PublishedAt
	}

	if input.CategoryID != nil {
		if *input.CategoryID == 0 {
			fields["category_id"] = nil
		} else {
			fields["category_id"] = *input.CategoryID
		}
	}

	changes := repository.PostChanges{
		Fields: fields,
		TagIDs: input.TagIDs,
		Meta:   input.Meta,
	}

	if err := pc.repo.Update(id, changes); err != nil {
		log.Printf("Error updating post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	updated, err := pc.repo.FindByID(id)
	if err != nil {
		log.Printf("Error reloading post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Post updated successfully",
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Description Delete a post; associated media files are removed from storage best-effort first. Requires auth headers.
// @Tags posts
// @Produce json
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := paramID(c, "idOrSlug")
	if !ok {
		abortInvalidID(c, "post")
		return
	}

	post, err := pc.repo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("Error fetching post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	// File removal failures are warnings; the database row still goes away.
	for _, media := range post.Media {
		path := filepath.Join(pc.uploadDir, filepath.FromSlash(media.Path))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Could not delete file %s: %v", media.Path, err)
		}
	}
	if strings.HasPrefix(post.FeaturedImage, "/uploads/") {
		rel := strings.TrimPrefix(post.FeaturedImage, "/uploads/")
		path := filepath.Join(pc.uploadDir, filepath.FromSlash(rel))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Could not delete featured image %s: %v", post.FeaturedImage, err)
		}
	}

	if err := pc.repo.Delete(id); err != nil {
		log.Printf("Error deleting post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post deleted successfully",
	})
}
