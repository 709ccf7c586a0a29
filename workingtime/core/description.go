package core

import "fmt"

// IssueSummarizer fetches an issue's summary from the tracker configured for
// a site. A failing lookup is a hard failure and aborts the submit.
type IssueSummarizer interface {
	GetIssueSummary(site, key string) (string, error)
}

// GetDescription composes the timesheet description from an optional issue
// key, an optional free-text note and the tracker's issue summary.
func GetDescription(jira IssueSummarizer, site, key, note string) (string, error) {
	if key != "" {
		summary, err := jira.GetIssueSummary(site, key)
		if err != nil {
			return "", err
		}

		description := fmt.Sprintf("%s (%s)", summary, key)
		if note != "" {
			description += ":\n\n" + note
		}
		return description, nil
	}

	if note != "" {
		return note, nil
	}
	return "-", nil
}

// GetJiraIssueURL returns the browse URL for an issue key, or empty when
// there is no key.
func GetJiraIssueURL(site, key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("https://%s/browse/%s", site, key)
}
