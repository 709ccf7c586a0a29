package jira

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.Handler) (*JiraClient, string, func()) {
	server := httptest.NewServer(handler)
	client := NewJiraClient("bot@example.com", "secret-token")
	client.Transport.Scheme = "http"

	site := server.Listener.Addr().String()
	return client, site, server.Close
}

func TestGetIssueSummary(t *testing.T) {
	client, site, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/2/issue/ABC-1", r.URL.Path)
		assert.Equal(t, "summary", r.URL.Query().Get("fields"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "bot@example.com", user)
		assert.Equal(t, "secret-token", pass)

		json.NewEncoder(w).Encode(map[string]any{
			"key": "ABC-1",
			"fields": map[string]any{
				"summary": "Fix bug",
			},
		})
	}))
	defer done()

	summary, err := client.GetIssueSummary(site, "ABC-1")
	assert.NoError(t, err)
	assert.Equal(t, "Fix bug", summary)
}

func TestGetIssueSummaryNotFound(t *testing.T) {
	client, site, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessages":["Issue does not exist"]}`, http.StatusNotFound)
	}))
	defer done()

	_, err := client.GetIssueSummary(site, "NOPE-404")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetIssueSummaryBadPayload(t *testing.T) {
	client, site, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer done()

	_, err := client.GetIssueSummary(site, "ABC-1")
	assert.Error(t, err)
}
