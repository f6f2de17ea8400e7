package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	ListReviewsByEvent(ctx context.Context, eventID primitive.ObjectID, offset, limit int) ([]*Review, int, error)
	AggregateEventRating(ctx context.Context, eventID primitive.ObjectID) (count int, avg float64, err error)
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *Review) (*Review, error) {
	id, err := insertOne(ctx, mdb.collection(ReviewsCollection), review)
	if err != nil {
		return nil, err
	}
	review.ID = id
	return review, nil
}

func (mdb *MongodbRepo) ListReviewsByEvent(ctx context.Context, eventID primitive.ObjectID, offset, limit int) ([]*Review, int, error) {
	return findMany[Review](ctx, mdb.collection(ReviewsCollection), bson.M{"event_id": eventID}, offset, limit)
}

// AggregateEventRating computes count and raw average over every
// review referencing the event. Returns (0, 0) when the event has no
// reviews.
func (mdb *MongodbRepo) AggregateEventRating(ctx context.Context, eventID primitive.ObjectID) (int, float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"event_id": eventID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$event_id",
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := mdb.collection(ReviewsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		Avg   float64 `bson:"avg"`
		Count int     `bson:"count"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Count, results[0].Avg, nil
}
