package models

import (
	"context"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Shared CRUD plumbing for the per-entity repositories. Missing
// documents surface as mongo.ErrNoDocuments; the service layer maps
// that to a not-found validation error.

func insertOne(ctx context.Context, col *mongo.Collection, doc any) (primitive.ObjectID, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func findByID[T any](ctx context.Context, col *mongo.Collection, id primitive.ObjectID) (*T, error) {
	var out T
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.M, offset, limit int) ([]*T, int, error) {
	if filter == nil {
		filter = bson.M{}
	}
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, int(total), nil
}

func updateByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, set bson.M) error {
	set["updated_at"] = time.Now()
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func docExists(ctx context.Context, col *mongo.Collection, id primitive.ObjectID) (bool, error) {
	n, err := col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func emailExists(ctx context.Context, col *mongo.Collection, email string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"email": email}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	n, err := col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateDoc builds a $set document from an update input struct, keyed
// by bson tag. Nil pointers and nil slices are absent fields and are
// skipped, which is what makes PATCH partial: applying the same input
// twice produces the same document.
func UpdateDoc(in any) bson.M {
	doc := bson.M{}
	v := reflect.ValueOf(in)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.SplitN(t.Field(i).Tag.Get("bson"), ",", 2)[0]
		if tag == "" || tag == "-" {
			continue
		}
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Ptr:
			if fv.IsNil() {
				continue
			}
			doc[tag] = fv.Elem().Interface()
		case reflect.Slice, reflect.Map:
			if fv.IsNil() {
				continue
			}
			doc[tag] = fv.Interface()
		default:
			doc[tag] = fv.Interface()
		}
	}
	return doc
}
