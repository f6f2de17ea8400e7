package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error)
	ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error)
	UpdateVenue(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteVenue(ctx context.Context, id primitive.ObjectID) error
	VenueExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	AddVenueReview(ctx context.Context, id primitive.ObjectID, review EmbeddedReview, rating float64) error
}

func (mdb *MongodbRepo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	id, err := insertOne(ctx, mdb.collection(VenuesCollection), venue)
	if err != nil {
		return nil, err
	}
	venue.ID = id
	return venue, nil
}

func (mdb *MongodbRepo) GetVenueByID(ctx context.Context, id primitive.ObjectID) (*Venue, error) {
	return findByID[Venue](ctx, mdb.collection(VenuesCollection), id)
}

func (mdb *MongodbRepo) ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error) {
	return findMany[Venue](ctx, mdb.collection(VenuesCollection), nil, offset, limit)
}

func (mdb *MongodbRepo) UpdateVenue(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(VenuesCollection), id, set)
}

func (mdb *MongodbRepo) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(VenuesCollection), id)
}

func (mdb *MongodbRepo) VenueExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(VenuesCollection), id)
}

// AddVenueReview appends the review and sets the recomputed mean in a
// single UpdateOne, so the embedded list and the derived rating can
// never disagree on a committed document.
func (mdb *MongodbRepo) AddVenueReview(ctx context.Context, id primitive.ObjectID, review EmbeddedReview, rating float64) error {
	res, err := mdb.collection(VenuesCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"rating": rating, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
