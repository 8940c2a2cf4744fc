package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type GNewsClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewGNewsClient(apiKey string) *GNewsClient {
	return &GNewsClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GNewsClient) Name() string {
	return "GNews"
}

func (c *GNewsClient) Search(query string) ([]Article, error) {
	reqURL := fmt.Sprintf(
		"https://gnews.io/api/v4/search?q=%s&lang=en&apikey=%s",
		url.QueryEscape(query), c.apiKey,
	)
	return c.fetch(reqURL)
}

func (c *GNewsClient) TopHeadlines(country string, limit int) ([]Article, error) {
	reqURL := fmt.Sprintf(
		"https://gnews.io/api/v4/top-headlines?country=%s&max=%d&apikey=%s",
		url.QueryEscape(country), limit, c.apiKey,
	)
	return c.fetch(reqURL)
}

func (c *GNewsClient) fetch(reqURL string) ([]Article, error) {
	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("gnews fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews status: %d", resp.StatusCode)
	}

	var raw gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("gnews decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.URL,
			ImageURL:    item.Image,
			Publisher:   item.Source.Name,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type gnewsResponse struct {
	Articles []gnewsArticle `json:"articles"`
}

type gnewsArticle struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	URL         string      `json:"url"`
	Image       string      `json:"image"`
	PublishedAt string      `json:"publishedAt"`
	Source      gnewsSource `json:"source"`
}

type gnewsSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
