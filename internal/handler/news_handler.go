package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"newsly/internal/auth"
	"newsly/pkg/news"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultTopics is the search fallback when neither an explicit query nor
// stored preferences are available.
const DefaultTopics = "Science+Health+education"

const (
	defaultCountry = "us"
	defaultLimit   = 30
	maxLimit       = 100
)

type PreferenceReader interface {
	GetPreferences(userID int64) ([]string, error)
}

type TrendingCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

type NewsHandler struct {
	provider    news.Provider
	preferences PreferenceReader
	cache       TrendingCache
}

func NewNewsHandler(provider news.Provider, preferences PreferenceReader, cache TrendingCache) *NewsHandler {
	return &NewsHandler{provider: provider, preferences: preferences, cache: cache}
}

// GetNews resolves the search query as: explicit q param, else the
// authenticated user's stored preferences joined with "+", else the
// default topic set.
func (h *NewsHandler) GetNews(c *gin.Context) {
	query := c.Query("q")

	if query == "" {
		if claims, ok := auth.ClaimsFrom(c); ok {
			prefs, err := h.preferences.GetPreferences(claims.UserID)
			if err != nil {
				slog.Warn("error fetching preferences, using default query", "error", err, "user_id", claims.UserID)
			} else if len(prefs) > 0 {
				query = strings.Join(prefs, "+")
			}
		}
	}

	if query == "" {
		query = DefaultTopics
	}

	if h.provider == nil {
		slog.Error("no news provider configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "News API key not configured"})
		return
	}

	articles, err := h.provider.Search(query)
	if err != nil {
		slog.Error("error fetching news", "error", err, "query", query, "provider", h.provider.Name())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, toNewsResponse(articles))
}

func (h *NewsHandler) GetTrending(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		country = defaultCountry
	}
	limit := getQueryLimit(c)

	if h.provider == nil {
		slog.Error("no news provider configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "News API key not configured"})
		return
	}

	cacheKey := fmt.Sprintf("%s:%d", country, limit)

	if h.cache != nil {
		if cached, ok := h.cache.Get(cacheKey); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	articles, err := h.provider.TopHeadlines(country, limit)
	if err != nil {
		slog.Error("error fetching trending news", "error", err, "country", country, "provider", h.provider.Name())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trending news"})
		return
	}

	res := toNewsResponse(articles)

	if h.cache != nil {
		if body, err := json.Marshal(res); err == nil {
			if err := h.cache.Set(cacheKey, string(body)); err != nil {
				slog.Warn("error caching trending news", "error", err, "key", cacheKey)
			}
		}
	}

	c.JSON(http.StatusOK, res)
}

func toNewsResponse(articles []news.Article) NewsResponse {
	res := NewsResponse{Articles: []ArticleResponse{}}
	for _, a := range articles {
		res.Articles = append(res.Articles, ArticleResponse{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			URLToImage:  a.ImageURL,
			Author:      a.Author,
			Source:      SourceResponse{Name: a.Publisher},
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
		})
	}
	return res
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	limit := getQueryInt("limit", defaultLimit, c)

	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
