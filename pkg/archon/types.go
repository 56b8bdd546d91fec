package archon

// SearchRequest is a knowledge-base query.
type SearchRequest struct {
	Query      string   `json:"query"`
	Tags       []string `json:"tags,omitempty"`
	MatchCount int      `json:"match_count"`
}

// SearchResult is one knowledge fragment.
type SearchResult struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// SearchResponse wraps the result list.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// UpdateTaskRequest changes the status of a tracked task.
type UpdateTaskRequest struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateTaskResponse is the tracker's acknowledgement.
type UpdateTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Config configures the Archon client.
type Config struct {
	BaseURL string
	APIKey  string
}
