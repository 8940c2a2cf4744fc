package handler

import "encoding/json"

type SignupRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Preferences []string `json:"preferences"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token       string   `json:"token"`
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Preferences []string `json:"preferences"`
}

type UpdatePreferencesRequest struct {
	Preferences []string `json:"preferences"`
}

type UpdatePreferencesResponse struct {
	Success     bool     `json:"success"`
	Preferences []string `json:"preferences"`
}

type PreferencesResponse struct {
	Preferences []string `json:"preferences"`
}

type SourceResponse struct {
	Name string `json:"name"`
}

type ArticleResponse struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	URL         string         `json:"url"`
	URLToImage  string         `json:"urlToImage"`
	Author      string         `json:"author"`
	Source      SourceResponse `json:"source"`
	PublishedAt string         `json:"publishedAt"`
}

type NewsResponse struct {
	Articles []ArticleResponse `json:"articles"`
}

type ScrapeResponse struct {
	Content string `json:"content"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type RecommendRequest struct {
	Articles json.RawMessage `json:"articles"`
	Title    string          `json:"title"`
}
