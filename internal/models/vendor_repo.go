package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorsRepo covers the people-and-suppliers collections:
// photographers, musical groups and staff. Each has a per-collection
// unique email.
type VendorsRepo interface {
	CreatePhotographer(ctx context.Context, p *Photographer) (*Photographer, error)
	GetPhotographerByID(ctx context.Context, id primitive.ObjectID) (*Photographer, error)
	ListPhotographers(ctx context.Context, offset, limit int) ([]*Photographer, int, error)
	UpdatePhotographer(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeletePhotographer(ctx context.Context, id primitive.ObjectID) error
	PhotographerExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	PhotographerEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error)

	CreateMusicalGroup(ctx context.Context, g *MusicalGroup) (*MusicalGroup, error)
	GetMusicalGroupByID(ctx context.Context, id primitive.ObjectID) (*MusicalGroup, error)
	ListMusicalGroups(ctx context.Context, offset, limit int) ([]*MusicalGroup, int, error)
	UpdateMusicalGroup(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteMusicalGroup(ctx context.Context, id primitive.ObjectID) error
	MusicalGroupExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	MusicalGroupEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error)

	CreateStaff(ctx context.Context, s *Staff) (*Staff, error)
	GetStaffByID(ctx context.Context, id primitive.ObjectID) (*Staff, error)
	ListStaff(ctx context.Context, filter bson.M, offset, limit int) ([]*Staff, int, error)
	UpdateStaff(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteStaff(ctx context.Context, id primitive.ObjectID) error
	StaffExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	StaffEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error)
}

func (mdb *MongodbRepo) CreatePhotographer(ctx context.Context, p *Photographer) (*Photographer, error) {
	id, err := insertOne(ctx, mdb.collection(PhotographersCollection), p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (mdb *MongodbRepo) GetPhotographerByID(ctx context.Context, id primitive.ObjectID) (*Photographer, error) {
	return findByID[Photographer](ctx, mdb.collection(PhotographersCollection), id)
}

func (mdb *MongodbRepo) ListPhotographers(ctx context.Context, offset, limit int) ([]*Photographer, int, error) {
	return findMany[Photographer](ctx, mdb.collection(PhotographersCollection), nil, offset, limit)
}

func (mdb *MongodbRepo) UpdatePhotographer(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(PhotographersCollection), id, set)
}

func (mdb *MongodbRepo) DeletePhotographer(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(PhotographersCollection), id)
}

func (mdb *MongodbRepo) PhotographerExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(PhotographersCollection), id)
}

func (mdb *MongodbRepo) PhotographerEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	return emailExists(ctx, mdb.collection(PhotographersCollection), email, exclude)
}

func (mdb *MongodbRepo) CreateMusicalGroup(ctx context.Context, g *MusicalGroup) (*MusicalGroup, error) {
	id, err := insertOne(ctx, mdb.collection(MusicalGroupsCollection), g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	return g, nil
}

func (mdb *MongodbRepo) GetMusicalGroupByID(ctx context.Context, id primitive.ObjectID) (*MusicalGroup, error) {
	return findByID[MusicalGroup](ctx, mdb.collection(MusicalGroupsCollection), id)
}

func (mdb *MongodbRepo) ListMusicalGroups(ctx context.Context, offset, limit int) ([]*MusicalGroup, int, error) {
	return findMany[MusicalGroup](ctx, mdb.collection(MusicalGroupsCollection), nil, offset, limit)
}

func (mdb *MongodbRepo) UpdateMusicalGroup(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(MusicalGroupsCollection), id, set)
}

func (mdb *MongodbRepo) DeleteMusicalGroup(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(MusicalGroupsCollection), id)
}

func (mdb *MongodbRepo) MusicalGroupExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(MusicalGroupsCollection), id)
}

func (mdb *MongodbRepo) MusicalGroupEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	return emailExists(ctx, mdb.collection(MusicalGroupsCollection), email, exclude)
}

func (mdb *MongodbRepo) CreateStaff(ctx context.Context, s *Staff) (*Staff, error) {
	id, err := insertOne(ctx, mdb.collection(StaffCollection), s)
	if err != nil {
		return nil, err
	}
	s.ID = id
	return s, nil
}

func (mdb *MongodbRepo) GetStaffByID(ctx context.Context, id primitive.ObjectID) (*Staff, error) {
	return findByID[Staff](ctx, mdb.collection(StaffCollection), id)
}

func (mdb *MongodbRepo) ListStaff(ctx context.Context, filter bson.M, offset, limit int) ([]*Staff, int, error) {
	return findMany[Staff](ctx, mdb.collection(StaffCollection), filter, offset, limit)
}

func (mdb *MongodbRepo) UpdateStaff(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(StaffCollection), id, set)
}

func (mdb *MongodbRepo) DeleteStaff(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(StaffCollection), id)
}

func (mdb *MongodbRepo) StaffExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(StaffCollection), id)
}

func (mdb *MongodbRepo) StaffEmailExists(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	return emailExists(ctx, mdb.collection(StaffCollection), email, exclude)
}
