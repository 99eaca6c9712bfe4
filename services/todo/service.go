package todo

import (
	"context"
	"errors"
	"fmt"
	"time"

	todoRepo "aster/database/repository/todo"
	"aster/models"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when a todo ID is unknown.
var ErrTodoNotFound = errors.New("todo not found")

// ErrInvalidTodo wraps input validation failures so handlers can tell them
// apart from storage errors.
var ErrInvalidTodo = errors.New("invalid todo")

// TodoService manages the user's todo list.
type TodoService interface {
	List(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, title, priority, dueDate string) (*models.Todo, error)
	Complete(ctx context.Context, id string) (*models.Todo, error)
	Delete(ctx context.Context, id string) (*models.Todo, error)
}

// DefaultTodoService implements TodoService.
type DefaultTodoService struct {
	Repo todoRepo.TodoRepository
}

func (s *DefaultTodoService) List(ctx context.Context) ([]models.Todo, error) {
	return s.Repo.GetAll(ctx)
}

// Create adds a todo. Priority defaults to medium; dueDate is optional but
// must be a calendar date when set.
func (s *DefaultTodoService) Create(ctx context.Context, title, priority, dueDate string) (*models.Todo, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidTodo)
	}

	switch priority {
	case "":
		priority = models.TodoPriorityMedium
	case models.TodoPriorityLow, models.TodoPriorityMedium, models.TodoPriorityHigh:
	default:
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidTodo, priority)
	}

	if dueDate != "" {
		if _, err := time.Parse("2006-01-02", dueDate); err != nil {
			return nil, fmt.Errorf("%w: bad due date %q: %v", ErrInvalidTodo, dueDate, err)
		}
	}

	todo := models.Todo{
		ID:        uuid.New().String(),
		Title:     title,
		Priority:  priority,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &todo, nil
}

func (s *DefaultTodoService) Complete(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := s.Repo.MarkCompleted(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to complete todo: %w", err)
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

func (s *DefaultTodoService) Delete(ctx context.Context, id string) (*models.Todo, error) {
	todo, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete todo: %w", err)
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}
