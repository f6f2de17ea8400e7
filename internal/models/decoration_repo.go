package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DecorationsRepo interface {
	CreateDecoration(ctx context.Context, decoration *Decoration) (*Decoration, error)
	GetDecorationByID(ctx context.Context, id primitive.ObjectID) (*Decoration, error)
	ListDecorations(ctx context.Context, offset, limit int) ([]*Decoration, int, error)
	UpdateDecoration(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteDecoration(ctx context.Context, id primitive.ObjectID) error
	DecorationExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	AddDecorationReview(ctx context.Context, id primitive.ObjectID, review EmbeddedReview, rating float64) error
}

func (mdb *MongodbRepo) CreateDecoration(ctx context.Context, decoration *Decoration) (*Decoration, error) {
	id, err := insertOne(ctx, mdb.collection(DecorationsCollection), decoration)
	if err != nil {
		return nil, err
	}
	decoration.ID = id
	return decoration, nil
}

func (mdb *MongodbRepo) GetDecorationByID(ctx context.Context, id primitive.ObjectID) (*Decoration, error) {
	return findByID[Decoration](ctx, mdb.collection(DecorationsCollection), id)
}

func (mdb *MongodbRepo) ListDecorations(ctx context.Context, offset, limit int) ([]*Decoration, int, error) {
	return findMany[Decoration](ctx, mdb.collection(DecorationsCollection), nil, offset, limit)
}

func (mdb *MongodbRepo) UpdateDecoration(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(DecorationsCollection), id, set)
}

func (mdb *MongodbRepo) DeleteDecoration(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(DecorationsCollection), id)
}

func (mdb *MongodbRepo) DecorationExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(DecorationsCollection), id)
}

// AddDecorationReview mirrors AddVenueReview: one UpdateOne for both
// the appended review and the recomputed mean.
func (mdb *MongodbRepo) AddDecorationReview(ctx context.Context, id primitive.ObjectID, review EmbeddedReview, rating float64) error {
	res, err := mdb.collection(DecorationsCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
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
