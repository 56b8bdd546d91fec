package tools

import (
	"context"
	"fmt"

	"agent-switchboard/internal/agent"
	"agent-switchboard/pkg/archon"
	pkgLog "agent-switchboard/pkg/log"
)

// SearchKnowledgeTool queries the Archon RAG knowledge base.
type SearchKnowledgeTool struct {
	client archon.IArchon
	l      pkgLog.Logger
}

// NewSearchKnowledgeTool creates a new knowledge search tool.
func NewSearchKnowledgeTool(client archon.IArchon, l pkgLog.Logger) *SearchKnowledgeTool {
	return &SearchKnowledgeTool{client: client, l: l}
}

func (t *SearchKnowledgeTool) Name() string {
	return "search_knowledge"
}

func (t *SearchKnowledgeTool) Description() string {
	return "Search the project knowledge base using a natural language query. Returns relevant document fragments."
}

func (t *SearchKnowledgeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Natural language search query",
			},
			"match_count": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of fragments to return (default 5)",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchKnowledgeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	matchCount := archon.DefaultMatchCount
	if n, ok := params["match_count"].(float64); ok && n > 0 {
		matchCount = int(n)
	}

	t.l.Infof(ctx, "search_knowledge: query=%q match_count=%d", query, matchCount)

	resp, err := t.client.Search(ctx, archon.SearchRequest{
		Query:      query,
		MatchCount: matchCount,
	})
	if err != nil {
		return nil, fmt.Errorf("knowledge search failed: %w", err)
	}

	fragments := make([]map[string]interface{}, 0, len(resp.Results))
	for _, r := range resp.Results {
		fragments = append(fragments, map[string]interface{}{
			"content":  r.Content,
			"metadata": r.Metadata,
		})
	}

	return map[string]interface{}{
		"count":   len(fragments),
		"results": fragments,
	}, nil
}

var _ agent.Tool = (*SearchKnowledgeTool)(nil)
