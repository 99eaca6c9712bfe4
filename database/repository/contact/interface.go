// File: database/repository/contact/interface.go
package contactRepo

import (
	"context"

	"aster/database"
	"aster/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository is the read-only directory. FindByName is
// case-insensitive and prefers an exact match over a substring match; a miss
// returns (nil, nil), not an error.
type ContactRepository interface {
	FindByName(ctx context.Context, name string) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo constructs a new MongoDB ContactRepository.
func NewMongoContactRepo() ContactRepository {
	return &mongoContactRepo{
		coll: database.DB().Collection("contacts"),
	}
}
