// Package searchindex is a thin client for the hosted search service. Index
// writes are best-effort side channels: callers log failures and move on, the
// primary content flow never depends on them.
package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Record is one indexed article.
type Record struct {
	ObjectID    string             `json:"objectID"`
	Title       string             `json:"title"`
	Content     string             `json:"content,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
	Type        string             `json:"type,omitempty"`
	Slug        string             `json:"slug,omitempty"`
	Excerpt     string             `json:"excerpt,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
	PublishedAt string             `json:"published_at,omitempty"`
	Highlights  map[string]Snippet `json:"_highlightResult,omitempty"`
}

// Snippet is a highlighted fragment returned with query hits.
type Snippet struct {
	Value string `json:"value"`
}

type Client struct {
	AppID      string
	APIKey     string
	IndexName  string
	BaseURL    string // override for tests; defaults to the hosted endpoint
	HTTPClient *http.Client
}

func NewClient(appID, apiKey, indexName string) *Client {
	return &Client{
		AppID:     appID,
		APIKey:    apiKey,
		IndexName: indexName,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s-dsn.algolia.net", c.AppID)
}

type queryRequest struct {
	Query                 string   `json:"query"`
	SimilarQuery          string   `json:"similarQuery,omitempty"`
	HitsPerPage           int      `json:"hitsPerPage,omitempty"`
	Filters               string   `json:"filters,omitempty"`
	AttributesToHighlight []string `json:"attributesToHighlight,omitempty"`
}

type queryResponse struct {
	Hits []Record `json:"hits"`
}

// Query runs a ranked full-text search. filters uses the service's filter
// syntax and may be empty.
func (c *Client) Query(ctx context.Context, text, filters string) ([]Record, error) {
	req := queryRequest{
		Query:                 text,
		HitsPerPage:           20,
		Filters:               filters,
		AttributesToHighlight: []string{"title", "content", "tags"},
	}
	return c.runQuery(ctx, req)
}

// SimilarTo runs a similarity search seeded by referenceText, excluding the
// record for excludeSlug so an article never relates to itself.
func (c *Client) SimilarTo(ctx context.Context, referenceText, excludeSlug string) ([]Record, error) {
	req := queryRequest{
		SimilarQuery: referenceText,
		HitsPerPage:  4,
	}
	if excludeSlug != "" {
		req.Filters = "NOT slug:" + excludeSlug
	}
	return c.runQuery(ctx, req)
}

func (c *Client) runQuery(ctx context.Context, payload queryRequest) ([]Record, error) {
	endpoint := fmt.Sprintf("%s/1/indexes/%s/query", c.baseURL(), c.IndexName)

	var res queryResponse
	if err := c.do(ctx, "POST", endpoint, payload, &res); err != nil {
		return nil, err
	}
	return res.Hits, nil
}

// SaveObject upserts one record by its ObjectID.
func (c *Client) SaveObject(ctx context.Context, record Record) error {
	if record.ObjectID == "" {
		return fmt.Errorf("record requires an objectID")
	}
	endpoint := fmt.Sprintf("%s/1/indexes/%s/%s", c.baseURL(), c.IndexName, record.ObjectID)
	return c.do(ctx, "PUT", endpoint, record, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}, out interface{}) error {
	reqJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(reqJson))
	if err != nil {
		return err
	}
	req.Header.Set("X-Algolia-Application-Id", c.AppID)
	req.Header.Set("X-Algolia-API-Key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("search index error, code %d, body %s", res.StatusCode, string(body))
	}

	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}
