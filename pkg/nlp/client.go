package nlp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external NLP microservice that provides text
// summarization and article recommendations.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Summarize(text string) (string, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Post(c.baseURL+"/summarize", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("nlp summarize: %w", err)
	}
	defer resp.Body.Close()

	var parsed struct {
		Summary string `json:"summary"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("nlp summarize decode: %w", err)
	}

	if parsed.Summary == "" {
		if parsed.Error != "" {
			return "", fmt.Errorf("nlp summarize: %s", parsed.Error)
		}
		return "", fmt.Errorf("nlp summarize: empty summary")
	}

	return parsed.Summary, nil
}

// Recommend forwards the article list and focal title and relays the
// service's response body verbatim.
func (c *Client) Recommend(articles json.RawMessage, title string) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]interface{}{
		"articles": articles,
		"title":    title,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.baseURL+"/recommend", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("nlp recommend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nlp recommend read: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nlp recommend status: %d", resp.StatusCode)
	}

	return raw, nil
}
