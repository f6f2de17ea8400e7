package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UsersRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*User, int, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	UserEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error)
	UserExists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	id, err := insertOne(ctx, mdb.collection(UsersCollection), user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return findByID[User](ctx, mdb.collection(UsersCollection), id)
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := mdb.collection(UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (mdb *MongodbRepo) ListUsers(ctx context.Context, offset, limit int) ([]*User, int, error) {
	return findMany[User](ctx, mdb.collection(UsersCollection), nil, offset, limit)
}

func (mdb *MongodbRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(UsersCollection), id, set)
}

func (mdb *MongodbRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(UsersCollection), id)
}

func (mdb *MongodbRepo) UserEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	return emailExists(ctx, mdb.collection(UsersCollection), email, exclude)
}

func (mdb *MongodbRepo) UserExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(UsersCollection), id)
}
