package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"taskdeck/internal/common"
	"taskdeck/internal/dbx"
	"taskdeck/internal/server/models"
	"taskdeck/internal/server/repositories/repomanager"
)

// TaskService provides owner-bound task operations. Every method takes the
// authenticated owner id explicitly; there is no way to reach a task without
// naming its owner.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create stores a new task for ownerID. Title is required; status defaults to
// pending. The owner comes from the authenticated identity only.
func (s *TaskService) Create(ctx context.Context, ownerID string, title, description, status string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.ErrorValidation
	}
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, common.ErrorValidation
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	repo := s.repomanager.Tasks(s.db)
	return repo.Create(ctx, task)
}

// List returns all tasks owned by ownerID, empty slice for a fresh user.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.ListByOwner(ctx, ownerID)
}

// Get returns the task only when it belongs to ownerID; a foreign task is
// reported as common.ErrorNotFound.
func (s *TaskService) Get(ctx context.Context, ownerID string, taskID string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.GetByID(ctx, ownerID, taskID)
}

// Update applies the provided fields to the owner's task. Empty fields keep
// their stored values. The read and the write run in one transaction so the
// ownership check and the update see the same row.
func (s *TaskService) Update(ctx context.Context, ownerID string, taskID string, title, description, status string) (*models.Task, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, common.ErrorValidation
	}

	var updated *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		task, err := repo.GetByID(ctx, ownerID, taskID)
		if err != nil {
			return err
		}
		if t := strings.TrimSpace(title); t != "" {
			task.Title = t
		}
		if description != "" {
			task.Description = description
		}
		if status != "" {
			task.Status = status
		}

		updated, err = repo.Update(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the owner's task; a foreign or missing task yields
// common.ErrorNotFound.
func (s *TaskService) Delete(ctx context.Context, ownerID string, taskID string) error {
	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, ownerID, taskID)
}
