package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSummarizer struct {
	summaries map[string]string
	err       error
}

func (f *fakeSummarizer) GetIssueSummary(site, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.summaries[key], nil
}

func TestGetDescription(t *testing.T) {
	jira := &fakeSummarizer{summaries: map[string]string{"ABC-1": "Fix bug"}}

	tests := []struct {
		name     string
		key      string
		note     string
		expected string
	}{
		{
			name:     "Key and note",
			key:      "ABC-1",
			note:     "done early",
			expected: "Fix bug (ABC-1):\n\ndone early",
		},
		{
			name:     "Key only",
			key:      "ABC-1",
			expected: "Fix bug (ABC-1)",
		},
		{
			name:     "Note only",
			note:     "internal sync",
			expected: "internal sync",
		},
		{
			name:     "Neither key nor note",
			expected: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetDescription(jira, "example.atlassian.net", tt.key, tt.note)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetDescriptionPropagatesLookupFailure(t *testing.T) {
	lookupErr := errors.New("tracker unreachable")
	jira := &fakeSummarizer{err: lookupErr}

	_, err := GetDescription(jira, "example.atlassian.net", "ABC-1", "note")
	assert.ErrorIs(t, err, lookupErr)
}

func TestGetDescriptionSkipsLookupWithoutKey(t *testing.T) {
	// No key means the tracker must not be called at all.
	jira := &fakeSummarizer{err: errors.New("must not be called")}

	got, err := GetDescription(jira, "example.atlassian.net", "", "note")
	assert.NoError(t, err)
	assert.Equal(t, "note", got)
}

func TestGetJiraIssueURL(t *testing.T) {
	assert.Equal(t,
		"https://example.atlassian.net/browse/ABC-1",
		GetJiraIssueURL("example.atlassian.net", "ABC-1"))
	assert.Equal(t, "", GetJiraIssueURL("example.atlassian.net", ""))
}
