package jira

type JiraClient struct {
	Transport *Transport
	Issues    *IssueEndpoint
}

// NewJiraClient initializes the API client
func NewJiraClient(email, token string) *JiraClient {
	t := NewTransport(email, token)
	return &JiraClient{
		Transport: t,
		Issues:    &IssueEndpoint{transport: t},
	}
}

// GetIssueSummary satisfies the summarizer contract timesheet descriptions
// are built with.
func (c *JiraClient) GetIssueSummary(site, key string) (string, error) {
	return c.Issues.GetSummary(site, key)
}
