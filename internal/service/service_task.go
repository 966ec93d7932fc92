package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/internal/validators"
	"github.com/taskdeck/taskdeck/models"
)

// taskService is the concrete implementation of [TaskService]. It applies
// validation and default values, then delegates persistence to the
// TaskRepository. User scoping is enforced at the repository level; this
// layer only guarantees the scope fields are populated.
type taskService struct {
	taskRepository store.TaskRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewTaskService constructs a [TaskService] backed by the given repository.
func NewTaskService(taskRepository store.TaskRepository, validator validators.Validator, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateTask validates the task, assigns an id and defaults, and persists it.
// An empty priority defaults to medium; an empty status defaults to pending.
func (s *taskService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.UserID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}

	if err := s.validator.Validate(ctx, task); err != nil {
		log.Error().Err(err).Msg("task payload failed validation")
		return models.Task{}, err
	}

	task.ID = s.ids.Generate()

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("userID", task.UserID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// GetTask returns a single task owned by userID.
func (s *taskService) GetTask(ctx context.Context, id string, userID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	if id == "" || userID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	found, err := s.taskRepository.FindTaskByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("taskID", id).Msg("task lookup ended with error")
		return models.Task{}, fmt.Errorf("task lookup ended with error: %w", err)
	}

	return found, nil
}

// ListTasks returns the user's tasks matching the filter, newest first.
func (s *taskService) ListTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	tasks, err := s.taskRepository.FindTasks(ctx, userID, filter)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// UpdateTask validates and applies a partial update.
func (s *taskService) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if update.ID == "" || update.UserID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Msg("task update failed validation")
		return models.Task{}, err
	}

	updated, err := s.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		if errors.Is(err, store.ErrNoFieldsToUpdate) {
			return models.Task{}, ErrInvalidDataProvided
		}
		log.Err(err).Str("taskID", update.ID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes a task owned by userID.
func (s *taskService) DeleteTask(ctx context.Context, id string, userID string) error {
	log := logger.FromContext(ctx)

	if id == "" || userID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.taskRepository.DeleteTask(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		log.Err(err).Str("taskID", id).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}
