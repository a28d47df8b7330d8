package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/dmitrijs2005/gophtasks/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type TaskService struct {
	repomanager repomanager.RepositoryManager
}

func NewTaskService(m repomanager.RepositoryManager) *TaskService {
	return &TaskService{repomanager: m}
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: text is required", common.ErrorValidation)
	}
	return nil
}

func fail(span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	return fmt.Errorf("%s: %w", msg, err)
}

// List returns the caller's tasks, oldest first. Never nil.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	ctx, span := tracer.Start(ctx, "TaskService.List", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	items, err := s.repomanager.Tasks().ListByUser(ctx, userID)
	if err != nil {
		return nil, fail(span, err, "error listing tasks")
	}
	span.SetAttributes(attribute.Int("tasks.count", len(items)))
	return items, nil
}

// Create stores a new task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID, text string) (*models.Task, error) {
	ctx, span := tracer.Start(ctx, "TaskService.Create", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	if err := validateText(text); err != nil {
		return nil, err
	}

	task, err := s.repomanager.Tasks().Create(ctx, &models.Task{UserID: userID, Text: text})
	if err != nil {
		return nil, fail(span, err, "error creating task")
	}
	return task, nil
}

// Update replaces the text of a task the caller owns. The task row stays
// locked between the owner check and the write.
func (s *TaskService) Update(ctx context.Context, userID, taskID, text string) (*models.Task, error) {
	ctx, span := tracer.Start(ctx, "TaskService.Update", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("task.id", taskID),
	))
	defer span.End()

	if err := validateText(text); err != nil {
		return nil, err
	}

	var updated *models.Task
	err := s.withOwnedTask(ctx, userID, taskID, func(ctx context.Context, m repomanager.RepositoryManager, task *models.Task) error {
		task.Text = text
		if err := m.Tasks().UpdateText(ctx, task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, s.classify(span, err, "error updating task")
	}
	return updated, nil
}

// Delete removes a task the caller owns.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	ctx, span := tracer.Start(ctx, "TaskService.Delete", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("task.id", taskID),
	))
	defer span.End()

	err := s.withOwnedTask(ctx, userID, taskID, func(ctx context.Context, m repomanager.RepositoryManager, task *models.Task) error {
		return m.Tasks().Delete(ctx, task.ID)
	})
	if err != nil {
		return s.classify(span, err, "error deleting task")
	}
	return nil
}

// withOwnedTask loads taskID inside a transaction and runs fn only when userID
// owns it. Ids that are not UUIDs cannot exist and yield common.ErrorNotFound;
// others are normalized to canonical form first.
func (s *TaskService) withOwnedTask(ctx context.Context, userID, taskID string, fn func(context.Context, repomanager.RepositoryManager, *models.Task) error) error {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return common.ErrorNotFound
	}
	taskID = id.String()

	return s.repomanager.WithTx(ctx, func(ctx context.Context, m repomanager.RepositoryManager) error {
		task, err := m.Tasks().GetForUpdate(ctx, taskID)
		if err != nil {
			return err
		}
		if !task.OwnedBy(userID) {
			return common.ErrorForbidden
		}
		return fn(ctx, m, task)
	})
}

func (s *TaskService) classify(span trace.Span, err error, msg string) error {
	if common.IsClientError(err) {
		return err
	}
	return fail(span, err, msg)
}
