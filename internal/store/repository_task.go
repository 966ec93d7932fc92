package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// Every query is scoped by user_id so one user can never observe or mutate
// another user's tasks.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns the canonical database
// representation with server-assigned timestamps.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask,
		task.ID, task.UserID, task.Title, task.Description,
		task.Priority, task.Status, task.DueDate, task.Category, task.Project)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := scanTask(row)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindTaskByID retrieves a single task scoped by its owner. Returns
// [ErrTaskNotFound] when no row matches.
func (r *taskRepository) FindTaskByID(ctx context.Context, id string, userID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findTaskByID, id, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.FindTaskByID").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindTasks returns all tasks of the user matching the filter, newest first.
// An empty filter returns everything the user owns.
func (r *taskRepository) FindTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTasksQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.FindTasks").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Err(err).Str("func", "*taskRepository.FindTasks").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update and returns the updated row. Returns
// [ErrTaskNotFound] when the task does not exist or belongs to another user,
// and [ErrNoFieldsToUpdate] when the update carries no changes.
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(update)
	if err != nil {
		if errors.Is(err, ErrNoFieldsToUpdate) {
			return models.Task{}, err
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	updated, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteTask removes a task scoped by its owner. Returns [ErrTaskNotFound]
// when nothing was deleted.
func (r *taskRepository) DeleteTask(ctx context.Context, id string, userID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteTask, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task        models.Task
		description sql.NullString
		dueDate     sql.NullTime
		category    sql.NullString
		project     sql.NullString
	)

	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &description,
		&task.Priority, &task.Status, &dueDate,
		&category, &project, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	task.Description = description.String
	task.Category = category.String
	task.Project = project.String
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}

	return task, nil
}
