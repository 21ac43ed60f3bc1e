package controllers

import (
	"encoding/xml"
	"log"
	"net/http"
	"time"

	"weblog/internal/repository"
	"weblog/internal/seo"

	"github.com/gin-gonic/gin"
)

type SitemapController struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	seo        *seo.Generator
}

func NewSitemapController(posts repository.PostRepository, categories repository.CategoryRepository, tags repository.TagRepository, gen *seo.Generator) *SitemapController {
	return &SitemapController{posts: posts, categories: categories, tags: tags, seo: gen}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap godoc
// @Summary XML sitemap
// @Description Serve the sitemap covering static pages, published posts, categories and tags that have published posts.
// @Tags sitemap
// @Produce xml
// @Router /sitemap.xml [get]
func (sm *SitemapController) Sitemap(c *gin.Context) {
	now := time.Now().UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: sm.seo.AbsoluteURL("/"), LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: sm.seo.AbsoluteURL("/posts"), LastMod: now, ChangeFreq: "daily", Priority: "0.9"},
	}

	posts, err := sm.posts.FindPublishedForSitemap()
	if err != nil {
		log.Printf("Error fetching posts for sitemap: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}
	for _, post := range posts {
		lastMod := post.UpdatedAt
		if post.PublishedAt != nil && post.PublishedAt.After(lastMod) {
			lastMod = *post.PublishedAt
		}
		urls = append(urls, sitemapURL{
			Loc:        sm.seo.AbsoluteURL("/posts/" + post.Slug),
			LastMod:    lastMod.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	categories, err := sm.categories.FindAllForSitemap()
	if err != nil {
		log.Printf("Error fetching categories for sitemap: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}
	for _, category := range categories {
		urls = append(urls, sitemapURL{
			Loc:        sm.seo.AbsoluteURL("/category/" + category.Slug),
			LastMod:    category.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	tags, err := sm.tags.FindWithPublishedPosts()
	if err != nil {
		log.Printf("Error fetching tags for sitemap: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}
	for _, tag := range tags {
		urls = append(urls, sitemapURL{
			Loc:        sm.seo.AbsoluteURL("/tag/" + tag.Slug),
			LastMod:    tag.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	out, err := xml.MarshalIndent(sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "", "  ")
	if err != nil {
		log.Printf("Error encoding sitemap: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
