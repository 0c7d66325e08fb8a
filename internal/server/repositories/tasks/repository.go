package tasks

import (
	"context"

	"taskdeck/internal/server/models"
)

// Repository is ownership-scoped task storage. Every read and write carries
// the owner identity; a row belonging to someone else is indistinguishable
// from a missing row (common.ErrorNotFound).
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error)
	GetByID(ctx context.Context, ownerID string, taskID string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, ownerID string, taskID string) error
}
