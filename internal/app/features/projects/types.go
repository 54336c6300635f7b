// internal/app/features/projects/types.go
package projects

import "github.com/dalemusser/projecthub/internal/domain/models"

// listResponse is the body of GET /api/projects.
type listResponse struct {
	Documents []models.Project `json:"documents"`
	Total     int              `json:"total"`
}

// deletedResponse is the body of DELETE /api/projects/{projectId}.
type deletedResponse struct {
	ID string `json:"$id"`
}
