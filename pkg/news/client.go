package news

import "time"

type Article struct {
	Title       string
	Description string
	Content     string
	URL         string
	ImageURL    string
	Author      string
	Publisher   string
	PublishedAt time.Time
}

type Provider interface {
	Search(query string) ([]Article, error)
	TopHeadlines(country string, limit int) ([]Article, error)
	Name() string
}
