// internal/app/features/tasks/types.go
package tasks

import "github.com/dalemusser/projecthub/internal/domain/models"

// createInput is the JSON body of POST /api/tasks.
type createInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	WorkspaceID string `json:"workspaceId"`
	ProjectID   string `json:"projectId"`
	AssigneeID  string `json:"assigneeId"`
	DueDate     string `json:"dueDate"`
}

// updateInput is the JSON body of PATCH /api/tasks/{taskId}.
// Absent fields are left unchanged.
type updateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	ProjectID   *string `json:"projectId"`
	AssigneeID  *string `json:"assigneeId"`
	DueDate     *string `json:"dueDate"`
	Position    *int    `json:"position"`
}

// bulkInput is the JSON body of POST /api/tasks/bulk-update.
type bulkInput struct {
	Tasks []bulkItem `json:"tasks"`
}

type bulkItem struct {
	ID       string `json:"$id"`
	Status   string `json:"status"`
	Position int    `json:"position"`
}

// taskView is a task with its project and assignee populated.
type taskView struct {
	models.Task
	Project  *models.Project    `json:"project,omitempty"`
	Assignee *models.Membership `json:"assignee,omitempty"`
}

type listResponse struct {
	Documents []taskView `json:"documents"`
	Total     int        `json:"total"`
}

type bulkResponse struct {
	Documents []models.Task `json:"documents"`
}

type deletedResponse struct {
	ID string `json:"$id"`
}
