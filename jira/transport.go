package jira

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Response struct {
	Data []byte
}

// Transport handles low-level HTTP and authentication. Requests are built
// per site because every project can point at its own tracker host.
type Transport struct {
	Email      string
	APIToken   string
	Scheme     string // defaults to https; tests override
	HTTPClient *http.Client
}

// NewTransport creates a transport with API token auth
func NewTransport(email, token string) *Transport {
	return &Transport{
		Email:      email,
		APIToken:   token,
		Scheme:     "https",
		HTTPClient: &http.Client{},
	}
}

// helper: build full URL for a site with query params
func (t *Transport) buildURL(site, path string, query map[string]string) string {
	u := url.URL{Scheme: t.Scheme, Host: site, Path: path}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Get sends a GET request to a site
func (t *Transport) Get(site, path string, query map[string]string) (*Response, error) {
	fullURL := t.buildURL(site, path, query)

	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if t.Email != "" || t.APIToken != "" {
		req.SetBasicAuth(t.Email, t.APIToken)
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GET %s failed with status code %d: %s", path, resp.StatusCode, string(b))
	}

	resdata, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Data: resdata,
	}, nil
}
