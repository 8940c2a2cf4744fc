package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Summarizer interface {
	Summarize(text string) (string, error)
}

type Recommender interface {
	Recommend(articles json.RawMessage, title string) (json.RawMessage, error)
}

type NLPHandler struct {
	summarizer  Summarizer
	recommender Recommender
}

func NewNLPHandler(summarizer Summarizer, recommender Recommender) *NLPHandler {
	return &NLPHandler{summarizer: summarizer, recommender: recommender}
}

func (h *NLPHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid text parameter is required."})
		return
	}

	if h.summarizer == nil {
		slog.Error("no summarizer configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary."})
		return
	}

	summary, err := h.summarizer.Summarize(req.Text)
	if err != nil {
		slog.Error("error generating summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary."})
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{Summary: summary})
}

// GetRecommendations relays the recommendation service's response verbatim.
func (h *NLPHandler) GetRecommendations(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing articles or title"})
		return
	}

	if len(req.Articles) == 0 || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing articles or title"})
		return
	}

	if h.recommender == nil {
		slog.Error("no recommender configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recommendations"})
		return
	}

	res, err := h.recommender.Recommend(req.Articles, req.Title)
	if err != nil {
		slog.Error("error fetching recommendations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recommendations"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", res)
}
