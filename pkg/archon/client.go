package archon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Client is the Archon HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *expirable.LRU[string, *SearchResponse]
}

var _ IArchon = (*Client)(nil)

// NewClient creates a new Archon client with a bounded search cache.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		cache: expirable.NewLRU[string, *SearchResponse](searchCacheSize, nil, searchCacheTTL),
	}
}

// Search queries the knowledge base. Identical queries within the cache TTL
// are served from memory without a network call.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if req.MatchCount <= 0 {
		req.MatchCount = DefaultMatchCount
	}

	key := cacheKey(req)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	var result SearchResponse
	if err := c.post(ctx, "/api/rag/query", req, &result); err != nil {
		return nil, err
	}

	c.cache.Add(key, &result)
	return &result, nil
}

// UpdateTask changes the status of a tracked task. Never cached.
func (c *Client) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*UpdateTaskResponse, error) {
	var result UpdateTaskResponse
	if err := c.post(ctx, "/api/tasks/update", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// post sends one JSON request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call archon API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("archon API error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func cacheKey(req SearchRequest) string {
	return fmt.Sprintf("%s|%s|%d", req.Query, strings.Join(req.Tags, ","), req.MatchCount)
}
