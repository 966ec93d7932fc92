package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

func newTestTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &taskRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func taskRow(task models.Task, now time.Time) *sqlmock.Rows {
	var due any
	if task.DueDate != nil {
		due = *task.DueDate
	}
	return sqlmock.
		NewRows(taskColumns).
		AddRow(task.ID, task.UserID, task.Title, task.Description,
			string(task.Priority), string(task.Status), due,
			task.Category, task.Project, now, now)
}

func TestCreateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	due := time.Now().Add(48 * time.Hour)
	task := models.Task{
		ID:       "task-1",
		UserID:   "user-1",
		Title:    "Write report",
		Priority: models.PriorityHigh,
		Status:   models.StatusPending,
		DueDate:  &due,
		Category: "Work",
	}

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(task.ID, task.UserID, task.Title, task.Description,
			task.Priority, task.Status, task.DueDate, task.Category, task.Project).
		WillReturnRows(taskRow(task, time.Now()))

	created, err := repo.CreateTask(ctx, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != task.ID {
		t.Errorf("expected id %s, got %s", task.ID, created.ID)
	}
	if created.DueDate == nil {
		t.Error("expected due date to survive the round trip")
	}
	if created.Priority != models.PriorityHigh {
		t.Errorf("expected priority high, got %s", created.Priority)
	}
}

func TestCreateTask_DBError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO tasks").
		WillReturnError(errors.New("db failure"))

	_, err := repo.CreateTask(ctx, models.Task{ID: "task-1", UserID: "user-1", Title: "x"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindTaskByID_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	task := models.Task{ID: "task-1", UserID: "user-1", Title: "Write report",
		Priority: models.PriorityMedium, Status: models.StatusPending}

	mock.ExpectQuery("SELECT id").
		WithArgs("task-1", "user-1").
		WillReturnRows(taskRow(task, time.Now()))

	found, err := repo.FindTaskByID(ctx, "task-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != "Write report" {
		t.Errorf("expected title Write report, got %s", found.Title)
	}
	if found.DueDate != nil {
		t.Error("expected nil due date")
	}
}

func TestFindTaskByID_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("missing", "user-1").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err := repo.FindTaskByID(ctx, "missing", "user-1")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestFindTasks_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(taskColumns).
		AddRow("task-1", "user-1", "First", "", "high", "pending", nil, "", "", now, now).
		AddRow("task-2", "user-1", "Second", "detail", "low", "completed", nil, "Work", "", now, now)

	mock.ExpectQuery("SELECT id").
		WithArgs("user-1").
		WillReturnRows(rows)

	tasks, err := repo.FindTasks(ctx, "user-1", models.TaskFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].Status != models.StatusCompleted {
		t.Errorf("expected completed status, got %s", tasks[1].Status)
	}
}

func TestFindTasks_EmptyResult(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	tasks, err := repo.FindTasks(ctx, "user-1", models.TaskFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Fatalf("expected 0 tasks, got %d", len(tasks))
	}
}

func TestUpdateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	newStatus := models.StatusCompleted
	update := models.TaskUpdate{ID: "task-1", UserID: "user-1", Status: &newStatus}

	task := models.Task{ID: "task-1", UserID: "user-1", Title: "Write report",
		Priority: models.PriorityMedium, Status: models.StatusCompleted}

	mock.ExpectQuery("UPDATE tasks").
		WillReturnRows(taskRow(task, time.Now()))

	updated, err := repo.UpdateTask(ctx, update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Errorf("expected completed status, got %s", updated.Status)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	title := "New title"
	update := models.TaskUpdate{ID: "missing", UserID: "user-1", Title: &title}

	mock.ExpectQuery("UPDATE tasks").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err := repo.UpdateTask(ctx, update)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateTask_NoFields(t *testing.T) {
	repo, _, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	_, err := repo.UpdateTask(ctx, models.TaskUpdate{ID: "task-1", UserID: "user-1"})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestDeleteTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs("task-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTask(ctx, "task-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs("missing", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTask(ctx, "missing", "user-1")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
