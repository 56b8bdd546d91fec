package tools

import (
	"context"
	"fmt"

	"agent-switchboard/internal/agent"
	"agent-switchboard/pkg/archon"
	pkgLog "agent-switchboard/pkg/log"
)

var allowedTaskStatuses = map[string]bool{
	"todo":   true,
	"doing":  true,
	"review": true,
	"done":   true,
}

// UpdateTaskTool changes the status of a tracked task in Archon.
type UpdateTaskTool struct {
	client archon.IArchon
	l      pkgLog.Logger
}

// NewUpdateTaskTool creates a new task update tool.
func NewUpdateTaskTool(client archon.IArchon, l pkgLog.Logger) *UpdateTaskTool {
	return &UpdateTaskTool{client: client, l: l}
}

func (t *UpdateTaskTool) Name() string {
	return "update_task"
}

func (t *UpdateTaskTool) Description() string {
	return "Update the status of a tracked task. Status must be one of: todo, doing, review, done."
}

func (t *UpdateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "string",
				"description": "Tracked task identifier",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"description": "New status: todo, doing, review, or done",
			},
			"notes": map[string]interface{}{
				"type":        "string",
				"description": "Optional progress notes",
			},
		},
		"required": []string{"task_id", "status"},
	}
}

func (t *UpdateTaskTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	taskID, ok := params["task_id"].(string)
	if !ok || taskID == "" {
		return nil, fmt.Errorf("task_id parameter is required")
	}

	status, ok := params["status"].(string)
	if !ok || !allowedTaskStatuses[status] {
		return nil, fmt.Errorf("status must be one of: todo, doing, review, done")
	}

	notes, _ := params["notes"].(string)

	t.l.Infof(ctx, "update_task: task_id=%s status=%s", taskID, status)

	resp, err := t.client.UpdateTask(ctx, archon.UpdateTaskRequest{
		TaskID: taskID,
		Status: status,
		Notes:  notes,
	})
	if err != nil {
		return nil, fmt.Errorf("task update failed: %w", err)
	}

	return map[string]interface{}{
		"success": resp.Success,
		"message": resp.Message,
	}, nil
}

var _ agent.Tool = (*UpdateTaskTool)(nil)
