package archon

import "context"

// IArchon defines the interface for the Archon knowledge and task service.
type IArchon interface {
	// Search queries the RAG knowledge base.
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)

	// UpdateTask changes the status of a tracked task.
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*UpdateTaskResponse, error)
}
