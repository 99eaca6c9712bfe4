package todo

import (
	"context"
	"errors"
	"testing"
	"time"

	"aster/models"
)

type memTodoRepo struct {
	todos     []models.Todo
	createErr error
}

func (m *memTodoRepo) GetAll(ctx context.Context) ([]models.Todo, error) {
	return append([]models.Todo(nil), m.todos...), nil
}

func (m *memTodoRepo) Create(ctx context.Context, t models.Todo) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.todos = append(m.todos, t)
	return nil
}

func (m *memTodoRepo) MarkCompleted(ctx context.Context, id string) (*models.Todo, error) {
	for i := range m.todos {
		if m.todos[i].ID == id {
			now := time.Now()
			m.todos[i].Completed = true
			m.todos[i].CompletedAt = &now
			copied := m.todos[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memTodoRepo) Delete(ctx context.Context, id string) (*models.Todo, error) {
	for i := range m.todos {
		if m.todos[i].ID == id {
			deleted := m.todos[i]
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

func TestCreate_Defaults(t *testing.T) {
	svc := &DefaultTodoService{Repo: &memTodoRepo{}}

	created, err := svc.Create(context.Background(), "Send agenda", "", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated ID")
	}
	if created.Priority != models.TodoPriorityMedium {
		t.Errorf("priority = %q, want medium default", created.Priority)
	}
	if created.Completed {
		t.Error("new todo should not be completed")
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := &DefaultTodoService{Repo: &memTodoRepo{}}

	tests := []struct {
		name     string
		title    string
		priority string
		dueDate  string
	}{
		{"empty title", "", "", ""},
		{"bad priority", "x", "urgent", ""},
		{"bad due date", "x", "high", "next tuesday"},
		{"wrong date format", "x", "", "03/10/2025"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.title, tc.priority, tc.dueDate)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidTodo) {
				t.Errorf("err = %v, want ErrInvalidTodo", err)
			}
		})
	}
}

func TestCreate_ValidDueDate(t *testing.T) {
	svc := &DefaultTodoService{Repo: &memTodoRepo{}}

	created, err := svc.Create(context.Background(), "Prepare slides", "high", "2025-03-14")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.DueDate != "2025-03-14" {
		t.Errorf("due date = %q", created.DueDate)
	}
}

func TestCreate_RepoFailure(t *testing.T) {
	svc := &DefaultTodoService{Repo: &memTodoRepo{createErr: errors.New("down")}}

	_, err := svc.Create(context.Background(), "x", "", "")
	if err == nil {
		t.Fatal("expected repo error to surface")
	}
	// Storage failures must not look like client mistakes.
	if errors.Is(err, ErrInvalidTodo) {
		t.Errorf("repo failure classified as validation error: %v", err)
	}
}

func TestCompleteAndDelete(t *testing.T) {
	repo := &memTodoRepo{}
	svc := &DefaultTodoService{Repo: repo}

	created, err := svc.Create(context.Background(), "Review PRs", "low", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	done, err := svc.Complete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil {
		t.Error("completed todo should carry completion state")
	}

	if _, err := svc.Complete(context.Background(), "missing"); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("complete missing: err = %v, want ErrTodoNotFound", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("deleted ID = %q, want %q", deleted.ID, created.ID)
	}

	if _, err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("delete again: err = %v, want ErrTodoNotFound", err)
	}

	todos, _ := svc.List(context.Background())
	if len(todos) != 0 {
		t.Errorf("list after delete = %d items, want 0", len(todos))
	}
}
