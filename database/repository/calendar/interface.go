// File: database/repository/calendar/interface.go
package calendarRepo

import (
	"context"

	"aster/database"
	"aster/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CalendarRepository supplies busy intervals for a date and is the single
// durable sink for confirmed events. AppendEvent either fully persists the
// event or fails without a partial write.
type CalendarRepository interface {
	GetEventsForDate(ctx context.Context, date string) ([]models.Event, error)
	AppendEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
}

type mongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a new MongoDB CalendarRepository.
func NewMongoCalendarRepo() CalendarRepository {
	return &mongoCalendarRepo{
		coll: database.DB().Collection("events"),
	}
}
