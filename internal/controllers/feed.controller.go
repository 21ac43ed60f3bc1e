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

const feedItemCount = 20

type FeedController struct {
	posts repository.PostRepository
	seo   *seo.Generator
}

func NewFeedController(posts repository.PostRepository, gen *seo.Generator) *FeedController {
	return &FeedController{posts: posts, seo: gen}
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description,omitempty"`
	Categories  []string `xml:"category,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

// Feed godoc
// @Summary RSS feed
// @Description Serve an RSS 2.0 feed of the latest published posts.
// @Tags feed
// @Produce xml
// @Router /feed.xml [get]
func (fc *FeedController) Feed(c *gin.Context) {
	posts, err := fc.posts.FindLatestPublished(feedItemCount)
	if err != nil {
		log.Printf("Error fetching posts for feed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate feed")
		return
	}

	items := make([]rssItem, 0, len(posts))
	for _, post := range posts {
		link := fc.seo.AbsoluteURL("/posts/" + post.Slug)
		item := rssItem{
			Title:       post.Title,
			Link:        link,
			GUID:        link,
			Description: post.Excerpt,
		}
		if post.Category != nil {
			item.Categories = append(item.Categories, post.Category.Name)
		}
		for _, tag := range post.Tags {
			item.Categories = append(item.Categories, tag.Name)
		}
		if post.PublishedAt != nil {
			item.PubDate = post.PublishedAt.UTC().Format(time.RFC1123Z)
		}
		items = append(items, item)
	}

	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:         fc.seo.SiteName,
			Link:          fc.seo.AbsoluteURL("/"),
			Description:   fc.seo.SiteDescription,
			Language:      "en",
			LastBuildDate: time.Now().UTC().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		log.Printf("Error encoding feed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate feed")
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", append([]byte(xml.Header), out...))
}
