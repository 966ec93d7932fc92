package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/taskdeck/taskdeck/models"
)

const (
	createUser = `INSERT INTO users (id, email, name, phone, password_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, email, name, phone, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, name, phone, password_hash, created_at
	FROM users
	WHERE email = $1;`

	findUserByID = `SELECT id, email, name, phone, password_hash, created_at
	FROM users
	WHERE id = $1;`

	createTask = `INSERT INTO tasks (id, user_id, title, description, priority, status, due_date, category, project)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, user_id, title, description, priority, status, due_date, category, project, created_at, updated_at;`

	findTaskByID = `SELECT id, user_id, title, description, priority, status, due_date, category, project, created_at, updated_at
	FROM tasks
	WHERE id = $1 AND user_id = $2;`

	deleteTask = `DELETE FROM tasks
	WHERE id = $1 AND user_id = $2;`
)

// taskColumns is the canonical column order used by every task SELECT and
// scanTask.
var taskColumns = []string{
	"id", "user_id", "title", "description", "priority", "status",
	"due_date", "category", "project", "created_at", "updated_at",
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindTasksQuery assembles the dynamic SELECT for listing a user's
// tasks. Only non-zero filter fields contribute WHERE clauses; the free-text
// search matches case-insensitively against title, description, category
// and project.
func buildFindTasksQuery(userID string, filter models.TaskFilter) (string, []any, error) {
	builder := psql.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Priority != "" {
		builder = builder.Where(sq.Eq{"priority": filter.Priority})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Project != "" {
		builder = builder.Where(sq.Eq{"project": filter.Project})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"category": pattern},
			sq.ILike{"project": pattern},
		})
	}

	return builder.ToSql()
}

// buildUpdateTaskQuery assembles the partial UPDATE for a task. Only non-nil
// fields of update are written; updated_at is always refreshed. Returns
// [ErrNoFieldsToUpdate] when the update carries nothing to change.
func buildUpdateTaskQuery(update models.TaskUpdate) (string, []any, error) {
	builder := psql.
		Update(models.Task{}.TableName()).
		Set("updated_at", sq.Expr("NOW()"))

	fields := 0
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		fields++
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		fields++
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
		fields++
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
		fields++
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
		fields++
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
		fields++
	}
	if update.Project != nil {
		builder = builder.Set("project", *update.Project)
		fields++
	}

	if fields == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder = builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", "))

	return builder.ToSql()
}
