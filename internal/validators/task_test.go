package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/models"
)

func TestTaskValidator_Task(t *testing.T) {
	v := NewTaskValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Task{Title: "Write report", Priority: models.PriorityHigh, Status: models.StatusPending}))
	require.NoError(t, v.Validate(ctx, models.Task{Title: "Bare minimum"}))

	tests := []struct {
		name      string
		task      models.Task
		wantField string
	}{
		{name: "missing title", task: models.Task{}, wantField: FieldTaskTitle},
		{name: "whitespace title", task: models.Task{Title: "   "}, wantField: FieldTaskTitle},
		{name: "oversized title", task: models.Task{Title: strings.Repeat("t", 256)}, wantField: FieldTaskTitle},
		{name: "unknown priority", task: models.Task{Title: "ok", Priority: "urgent"}, wantField: FieldTaskPriority},
		{name: "unknown status", task: models.Task{Title: "ok", Status: "archived"}, wantField: FieldTaskStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.task)
			require.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.wantField)
		})
	}
}

func TestTaskValidator_TaskUpdate(t *testing.T) {
	v := NewTaskValidator()
	ctx := context.Background()

	title := "Renamed"
	require.NoError(t, v.Validate(ctx, models.TaskUpdate{ID: "t1", UserID: "u1", Title: &title}))

	empty := "  "
	badPriority := models.TaskPriority("asap")

	tests := []struct {
		name      string
		update    models.TaskUpdate
		wantField string
	}{
		{name: "missing id", update: models.TaskUpdate{UserID: "u1"}, wantField: FieldTaskID},
		{name: "missing user id", update: models.TaskUpdate{ID: "t1"}, wantField: FieldTaskUserID},
		{name: "empty title update", update: models.TaskUpdate{ID: "t1", UserID: "u1", Title: &empty}, wantField: FieldTaskTitle},
		{name: "bad priority update", update: models.TaskUpdate{ID: "t1", UserID: "u1", Priority: &badPriority}, wantField: FieldTaskPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			require.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.wantField)
		})
	}
}

func TestTaskValidator_UnsupportedType(t *testing.T) {
	v := NewTaskValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "nope"), ErrUnsupportedType)
}
