// File: database/repository/todo/interface.go
package todoRepo

import (
	"context"

	"aster/database"
	"aster/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TodoRepository interface {
	GetAll(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, todo models.Todo) error
	MarkCompleted(ctx context.Context, id string) (*models.Todo, error)
	Delete(ctx context.Context, id string) (*models.Todo, error)
}

type mongoTodoRepo struct {
	coll *mongo.Collection
}

// NewMongoTodoRepo constructs a new MongoDB TodoRepository.
func NewMongoTodoRepo() TodoRepository {
	return &mongoTodoRepo{
		coll: database.DB().Collection("todos"),
	}
}
