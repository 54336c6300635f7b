// internal/app/features/workspaces/types.go
package workspaces

import "github.com/dalemusser/projecthub/internal/domain/models"

type listResponse struct {
	Documents []models.Workspace `json:"documents"`
	Total     int                `json:"total"`
}

type deletedResponse struct {
	ID string `json:"$id"`
}
