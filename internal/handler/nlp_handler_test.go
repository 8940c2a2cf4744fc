package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeSummarizer struct {
	summary  string
	err      error
	lastText string
}

func (f *fakeSummarizer) Summarize(text string) (string, error) {
	f.lastText = text
	return f.summary, f.err
}

type fakeRecommender struct {
	response  json.RawMessage
	err       error
	lastTitle string
}

func (f *fakeRecommender) Recommend(articles json.RawMessage, title string) (json.RawMessage, error) {
	f.lastTitle = title
	return f.response, f.err
}

func newNLPTestRouter(summarizer Summarizer, recommender Recommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNLPHandler(summarizer, recommender)
	r.POST("/summarize", h.Summarize)
	r.POST("/get-recommendations", h.GetRecommendations)
	return r
}

func TestSummarize_ReturnsSummary(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "Short version."}
	r := newNLPTestRouter(summarizer, &fakeRecommender{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"text":"A very long article body."}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A very long article body.", summarizer.lastText)

	var res SummarizeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Short version.", res.Summary)
}

func TestSummarize_MissingText(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "Short version."}
	r := newNLPTestRouter(summarizer, &fakeRecommender{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "", summarizer.lastText)
}

func TestSummarize_UpstreamFailure(t *testing.T) {
	summarizer := &fakeSummarizer{err: errors.New("model unavailable")}
	r := newNLPTestRouter(summarizer, &fakeRecommender{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"text":"body"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Failed to generate summary.", res["error"])
}

func TestSummarize_NoSummarizerConfigured(t *testing.T) {
	r := newNLPTestRouter(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"text":"body"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetRecommendations_RelaysResponse(t *testing.T) {
	recommender := &fakeRecommender{response: json.RawMessage(`{"recommendations":[{"title":"Related story"}]}`)}
	r := newNLPTestRouter(&fakeSummarizer{}, recommender)

	body := `{"articles":[{"title":"A"},{"title":"B"}],"title":"A"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/get-recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", recommender.lastTitle)
	assert.Equal(t, `{"recommendations":[{"title":"Related story"}]}`, w.Body.String())
}

func TestGetRecommendations_MissingInputs(t *testing.T) {
	recommender := &fakeRecommender{}
	r := newNLPTestRouter(&fakeSummarizer{}, recommender)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/get-recommendations", strings.NewReader(`{"articles":[{"title":"A"}]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Missing articles or title", res["error"])
}

func TestGetRecommendations_UpstreamFailure(t *testing.T) {
	recommender := &fakeRecommender{err: errors.New("service down")}
	r := newNLPTestRouter(&fakeSummarizer{}, recommender)

	body := `{"articles":[{"title":"A"}],"title":"A"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/get-recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
