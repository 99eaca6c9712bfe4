// File: database/repository/todo/todo_mongo.go
package todoRepo

import (
	"context"
	"time"

	"aster/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTodoRepo) GetAll(ctx context.Context) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []models.Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *mongoTodoRepo) Create(ctx context.Context, todo models.Todo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, todo)
	return err
}

// MarkCompleted sets the completed flag and stamp. Returns the updated todo,
// or nil when no todo has the given ID.
func (r *mongoTodoRepo) MarkCompleted(ctx context.Context, id string) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{"completed": true, "completedAt": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var todo models.Todo
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&todo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *mongoTodoRepo) Delete(ctx context.Context, id string) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var todo models.Todo
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&todo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
