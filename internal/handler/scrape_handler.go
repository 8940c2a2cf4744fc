package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"newsly/pkg/scrape"

	"github.com/gin-gonic/gin"
)

type ArticleExtractor interface {
	Extract(pageURL string) (string, error)
}

type ScrapeHandler struct {
	extractor ArticleExtractor
}

func NewScrapeHandler(extractor ArticleExtractor) *ScrapeHandler {
	return &ScrapeHandler{extractor: extractor}
}

func (h *ScrapeHandler) Scrape(c *gin.Context) {
	pageURL := c.Query("url")
	if pageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter is required."})
		return
	}

	content, err := h.extractor.Extract(pageURL)
	if err != nil {
		if errors.Is(err, scrape.ErrNoContent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to extract article content."})
			return
		}
		slog.Error("error scraping article", "error", err, "url", pageURL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article."})
		return
	}

	c.JSON(http.StatusOK, ScrapeResponse{Content: content})
}
