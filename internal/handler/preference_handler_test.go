package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsly/internal/auth"
	"newsly/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakePreferenceStore struct {
	prefs map[int64][]string
	err   error
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{prefs: map[int64][]string{}}
}

func (f *fakePreferenceStore) GetPreferences(userID int64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	prefs, ok := f.prefs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return prefs, nil
}

func (f *fakePreferenceStore) UpdatePreferences(userID int64, preferences []string) error {
	if f.err != nil {
		return f.err
	}
	f.prefs[userID] = preferences
	return nil
}

func newPreferenceTestRouter(store PreferenceStore, tokens *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPreferenceHandler(store)
	r.GET("/api/get-preferences", h.GetPreferences)
	r.POST("/update-preferences", auth.RequireAuth(tokens), h.UpdatePreferences)
	return r
}

func TestUpdateThenGetPreferences(t *testing.T) {
	store := newFakePreferenceStore()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := tokens.Issue(7, "ann@x.com")
	assert.Equal(t, nil, err)

	r := newPreferenceTestRouter(store, tokens)

	body := `{"preferences":["Technology","Sports"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/update-preferences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var updateRes UpdatePreferencesResponse
	json.Unmarshal(w.Body.Bytes(), &updateRes)
	assert.Equal(t, true, updateRes.Success)
	assert.Equal(t, []string{"Technology", "Sports"}, updateRes.Preferences)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/get-preferences?userId=7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var getRes PreferencesResponse
	json.Unmarshal(w.Body.Bytes(), &getRes)
	assert.Equal(t, []string{"Technology", "Sports"}, getRes.Preferences)
}

func TestUpdatePreferences_Overwrites(t *testing.T) {
	store := newFakePreferenceStore()
	store.prefs[7] = []string{"Science", "Health"}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	token, _ := tokens.Issue(7, "ann@x.com")

	r := newPreferenceTestRouter(store, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/update-preferences", strings.NewReader(`{"preferences":["Sports"]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Sports"}, store.prefs[7])
}

func TestUpdatePreferences_NoToken(t *testing.T) {
	store := newFakePreferenceStore()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	r := newPreferenceTestRouter(store, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/update-preferences", strings.NewReader(`{"preferences":["Sports"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, len(store.prefs))
}

func TestGetPreferences_MissingUserID(t *testing.T) {
	store := newFakePreferenceStore()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	r := newPreferenceTestRouter(store, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/get-preferences", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPreferences_UnknownUser(t *testing.T) {
	store := newFakePreferenceStore()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	r := newPreferenceTestRouter(store, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/get-preferences?userId=999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
