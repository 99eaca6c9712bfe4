// File: database/repository/calendar/calendar_mongo.go
package calendarRepo

import (
	"context"
	"fmt"
	"time"

	"aster/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetEventsForDate returns all events whose start falls on the given calendar
// date, ordered by start time.
func (r *mongoCalendarRepo) GetEventsForDate(ctx context.Context, date string) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	filter := bson.M{"start": bson.M{"$gte": dayStart, "$lt": dayEnd}}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AppendEvent persists a confirmed event draft as a single insert.
func (r *mongoCalendarRepo) AppendEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	event := models.Event{
		ID:        uuid.New().String(),
		Title:     draft.Title,
		Start:     draft.Start,
		End:       draft.End,
		Attendees: draft.Attendees,
		CreatedAt: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *mongoCalendarRepo) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}
