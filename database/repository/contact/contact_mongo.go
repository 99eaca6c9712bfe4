// File: database/repository/contact/contact_mongo.go
package contactRepo

import (
	"context"
	"regexp"
	"time"

	"aster/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindByName tries an exact case-insensitive match first, then falls back to
// a substring match. A miss is not an error.
func (r *mongoContactRepo) FindByName(ctx context.Context, name string) (*models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	quoted := regexp.QuoteMeta(name)

	var contact models.Contact
	exact := bson.M{"name": primitive.Regex{Pattern: "^" + quoted + "$", Options: "i"}}
	err := r.coll.FindOne(ctx, exact).Decode(&contact)
	if err == nil {
		return &contact, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	partial := bson.M{"name": primitive.Regex{Pattern: quoted, Options: "i"}}
	err = r.coll.FindOne(ctx, partial).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *mongoContactRepo) GetAll(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
