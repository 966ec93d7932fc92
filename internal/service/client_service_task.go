package service

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/adapter"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

// Bucket names in display order.
const (
	BucketToday     = "Today"
	BucketThisWeek  = "This week"
	BucketUpcoming  = "Upcoming"
	BucketSomeday   = "Someday"
	BucketCompleted = "Completed"
)

type clientTaskService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	now func() time.Time
}

func NewClientTaskService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientTaskService {
	return &clientTaskService{adapter: serverAdapter, logger: log, now: time.Now}
}

func (s *clientTaskService) Create(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Title == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	created, err := s.adapter.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, mapAdapterError(err)
	}

	return created, nil
}

func (s *clientTaskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.adapter.ListTasks(ctx, filter)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return tasks, nil
}

// ListBuckets groups the filtered tasks by due date. Overdue tasks sort into
// Today so they stay visible at the top of the list.
func (s *clientTaskService) ListBuckets(ctx context.Context, filter models.TaskFilter) ([]models.TaskBucket, error) {
	tasks, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)
	endOfWeek := startOfDay.AddDate(0, 0, 7)

	grouped := map[string][]models.Task{}
	for _, task := range tasks {
		name := bucketFor(task, endOfDay, endOfWeek)
		grouped[name] = append(grouped[name], task)
	}

	buckets := make([]models.TaskBucket, 0, 5)
	for _, name := range []string{BucketToday, BucketThisWeek, BucketUpcoming, BucketSomeday, BucketCompleted} {
		if len(grouped[name]) == 0 {
			continue
		}
		buckets = append(buckets, models.TaskBucket{Name: name, Tasks: grouped[name]})
	}

	return buckets, nil
}

func bucketFor(task models.Task, endOfDay, endOfWeek time.Time) string {
	if task.Status == models.StatusCompleted {
		return BucketCompleted
	}
	if task.DueDate == nil {
		return BucketSomeday
	}
	switch {
	case task.DueDate.Before(endOfDay):
		return BucketToday
	case task.DueDate.Before(endOfWeek):
		return BucketThisWeek
	default:
		return BucketUpcoming
	}
}

func (s *clientTaskService) Update(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	if update.ID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	updated, err := s.adapter.UpdateTask(ctx, update)
	if err != nil {
		return models.Task{}, mapAdapterError(err)
	}

	return updated, nil
}

func (s *clientTaskService) Complete(ctx context.Context, id string) (models.Task, error) {
	status := models.StatusCompleted
	return s.Update(ctx, models.TaskUpdate{ID: id, Status: &status})
}

func (s *clientTaskService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.adapter.DeleteTask(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	return nil
}
