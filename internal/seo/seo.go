package seo

import (
	"fmt"
	"strings"
	"time"

	"weblog/internal/models"
)

// Generator derives page metadata and structured data from content entities.
// It is pure: all site context is injected at construction.
type Generator struct {
	SiteURL         string
	SiteName        string
	SiteDescription string
}

func NewGenerator(siteURL, siteName, siteDescription string) *Generator {
	return &Generator{
		SiteURL:         strings.TrimRight(siteURL, "/"),
		SiteName:        siteName,
		SiteDescription: siteDescription,
	}
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

type OpenGraph struct {
	Type          string     `json:"type"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	URL           string     `json:"url"`
	SiteName      string     `json:"siteName"`
	Images        []Image    `json:"images,omitempty"`
	PublishedTime *time.Time `json:"publishedTime,omitempty"`
	ModifiedTime  *time.Time `json:"modifiedTime,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
}

type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// Metadata is the resolved page-level metadata for one entity.
type Metadata struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords,omitempty"`
	Canonical   string      `json:"canonical"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
	Robots      Robots      `json:"robots"`
}

// AbsoluteURL joins a path with the site base URL.
func (g *Generator) AbsoluteURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.SiteURL + path
}

// ForPost resolves metadata for a post page. Override precedence: the SEO
// override field wins, then the natural field, then the secondary field.
func (g *Generator) ForPost(post *models.Post) Metadata {
	title := post.MetaTitle
	if title == "" {
		title = post.Title
	}

	description := post.MetaDescription
	if description == "" {
		description = post.Excerpt
	}

	canonical := post.CanonicalURL
	if canonical == "" {
		canonical = g.AbsoluteURL("/posts/" + post.Slug)
	}

	keywords := g.postKeywords(post)

	var images []Image
	if post.FeaturedImage != "" {
		images = append(images, Image{
			URL:    g.AbsoluteURL(post.FeaturedImage),
			Width:  1200,
			Height: 630,
			Alt:    title,
		})
	}

	card := "summary_large_image"
	var twitterImages []string
	for _, img := range images {
		twitterImages = append(twitterImages, img.URL)
	}

	published := post.Status == models.PostStatusPublished
	modified := post.UpdatedAt

	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Type:          "article",
			Title:         title,
			Description:   description,
			URL:           canonical,
			SiteName:      g.SiteName,
			Images:        images,
			PublishedTime: post.PublishedAt,
			ModifiedTime:  &modified,
			Tags:          keywords,
		},
		Twitter: TwitterCard{
			Card:        card,
			Title:       title,
			Description: description,
			Images:      twitterImages,
		},
		Robots: Robots{Index: published, Follow: published},
	}
}

// postKeywords unions tag names, the category name and any explicit
// "keywords" meta annotation, de-duplicated in first-seen order.
func (g *Generator) postKeywords(post *models.Post) []string {
	var keywords []string
	seen := make(map[string]struct{})

	add := func(k string) {
		k = strings.TrimSpace(k)
		if k == "" {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}

	for _, tag := range post.Tags {
		add(tag.Name)
	}
	if post.Category != nil {
		add(post.Category.Name)
	}
	for _, m := range post.Meta {
		if m.Key == "keywords" {
			for _, k := range strings.Split(m.Value, ",") {
				add(k)
			}
		}
	}

	return keywords
}

// ForCategory resolves metadata for a category archive page.
func (g *Generator) ForCategory(category *models.Category) Metadata {
	title := category.MetaTitle
	if title == "" {
		title = fmt.Sprintf("%s - Articles & News", category.Name)
	}

	description := category.MetaDescription
	if description == "" {
		description = category.Description
	}
	if description == "" {
		description = fmt.Sprintf("Browse all articles in %s", category.Name)
	}

	canonical := g.AbsoluteURL("/category/" + category.Slug)

	return Metadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Type:        "website",
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    g.SiteName,
		},
		Twitter: TwitterCard{Card: "summary", Title: title, Description: description},
		Robots:  Robots{Index: true, Follow: true},
	}
}

// ForTag resolves metadata for a tag archive page.
func (g *Generator) ForTag(tag *models.Tag) Metadata {
	title := tag.MetaTitle
	if title == "" {
		title = fmt.Sprintf("%s - Tagged Articles", tag.Name)
	}

	description := tag.MetaDescription
	if description == "" {
		description = fmt.Sprintf("Browse all articles tagged with %s", tag.Name)
	}

	canonical := g.AbsoluteURL("/tag/" + tag.Slug)

	return Metadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Type:        "website",
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    g.SiteName,
		},
		Twitter: TwitterCard{Card: "summary", Title: title, Description: description},
		Robots:  Robots{Index: true, Follow: true},
	}
}

// ArticleJSONLD builds schema.org Article structured data for a post.
func (g *Generator) ArticleJSONLD(post *models.Post) map[string]interface{} {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"headline":    post.Title,
		"description": post.Excerpt,
		"author": map[string]string{
			"@type": "Organization",
			"name":  g.SiteName,
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  g.SiteName,
			"logo": map[string]string{
				"@type": "ImageObject",
				"url":   g.AbsoluteURL("/logo.png"),
			},
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   g.AbsoluteURL("/posts/" + post.Slug),
		},
	}

	if post.FeaturedImage != "" {
		data["image"] = []string{g.AbsoluteURL(post.FeaturedImage)}
	}
	if post.PublishedAt != nil {
		data["datePublished"] = post.PublishedAt.Format(time.RFC3339)
	}
	data["dateModified"] = post.UpdatedAt.Format(time.RFC3339)

	return data
}

// WebsiteJSONLD builds schema.org WebSite structured data with a SearchAction.
func (g *Generator) WebsiteJSONLD() map[string]interface{} {
	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        g.SiteName,
		"description": g.SiteDescription,
		"url":         g.SiteURL,
		"potentialAction": map[string]interface{}{
			"@type": "SearchAction",
			"target": map[string]string{
				"@type":       "EntryPoint",
				"urlTemplate": g.SiteURL + "/search?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	}
}

// BreadcrumbItem is one entry of a breadcrumb trail, home first.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// BreadcrumbJSONLD builds schema.org BreadcrumbList structured data. Callers
// assemble the trail from a home entry through any parent category down to
// the entity itself.
func (g *Generator) BreadcrumbJSONLD(items []BreadcrumbItem) map[string]interface{} {
	elements := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     g.AbsoluteURL(item.URL),
		})
	}
	return map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}
