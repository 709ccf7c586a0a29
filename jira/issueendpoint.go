package jira

import (
	"encoding/json"
	"fmt"
)

type IssueDTO struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

type IssueEndpoint struct {
	transport *Transport
}

// GetSummary fetches a single issue's summary field from the site's tracker.
func (e *IssueEndpoint) GetSummary(site, key string) (string, error) {
	resp, err := e.transport.Get(site, fmt.Sprintf("/rest/api/2/issue/%s", key), map[string]string{
		"fields": "summary",
	})
	if err != nil {
		return "", err
	}

	var issue IssueDTO
	if err := json.Unmarshal(resp.Data, &issue); err != nil {
		return "", err
	}

	return issue.Fields.Summary, nil
}
