package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	ListEvents(ctx context.Context, filter bson.M, offset, limit int) ([]*Event, int, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
	EventExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	SetEventRating(ctx context.Context, id primitive.ObjectID, rating float64, count int) error
	ListEventIDs(ctx context.Context) ([]primitive.ObjectID, error)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	id, err := insertOne(ctx, mdb.collection(EventsCollection), event)
	if err != nil {
		return nil, err
	}
	event.ID = id
	return event, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	return findByID[Event](ctx, mdb.collection(EventsCollection), id)
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context, filter bson.M, offset, limit int) ([]*Event, int, error) {
	return findMany[Event](ctx, mdb.collection(EventsCollection), filter, offset, limit)
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(EventsCollection), id, set)
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(EventsCollection), id)
}

func (mdb *MongodbRepo) EventExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(EventsCollection), id)
}

// SetEventRating pushes a recomputed aggregate onto the event. The
// rating itself is derived in the service layer from the reviews
// collection.
func (mdb *MongodbRepo) SetEventRating(ctx context.Context, id primitive.ObjectID, rating float64, count int) error {
	return updateByID(ctx, mdb.collection(EventsCollection), id, bson.M{
		"rating":       rating,
		"review_count": count,
	})
}

func (mdb *MongodbRepo) ListEventIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	raw, err := mdb.collection(EventsCollection).Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
