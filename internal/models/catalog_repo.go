package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogRepo covers the three bookable-item collections that share
// plain CRUD semantics: packages, menu items and rental items.
type CatalogRepo interface {
	CreatePackage(ctx context.Context, pkg *Package) (*Package, error)
	GetPackageByID(ctx context.Context, id primitive.ObjectID) (*Package, error)
	ListPackages(ctx context.Context, offset, limit int) ([]*Package, int, error)
	UpdatePackage(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeletePackage(ctx context.Context, id primitive.ObjectID) error
	PackageExists(ctx context.Context, id primitive.ObjectID) (bool, error)

	CreateMenuItem(ctx context.Context, item *MenuItem) (*MenuItem, error)
	GetMenuItemByID(ctx context.Context, id primitive.ObjectID) (*MenuItem, error)
	ListMenuItems(ctx context.Context, filter bson.M, offset, limit int) ([]*MenuItem, int, error)
	UpdateMenuItem(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error

	CreateRentalItem(ctx context.Context, item *RentalItem) (*RentalItem, error)
	GetRentalItemByID(ctx context.Context, id primitive.ObjectID) (*RentalItem, error)
	ListRentalItems(ctx context.Context, filter bson.M, offset, limit int) ([]*RentalItem, int, error)
	UpdateRentalItem(ctx context.Context, id primitive.ObjectID, set bson.M) error
	DeleteRentalItem(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreatePackage(ctx context.Context, pkg *Package) (*Package, error) {
	id, err := insertOne(ctx, mdb.collection(PackagesCollection), pkg)
	if err != nil {
		return nil, err
	}
	pkg.ID = id
	return pkg, nil
}

func (mdb *MongodbRepo) GetPackageByID(ctx context.Context, id primitive.ObjectID) (*Package, error) {
	return findByID[Package](ctx, mdb.collection(PackagesCollection), id)
}

func (mdb *MongodbRepo) ListPackages(ctx context.Context, offset, limit int) ([]*Package, int, error) {
	return findMany[Package](ctx, mdb.collection(PackagesCollection), nil, offset, limit)
}

func (mdb *MongodbRepo) UpdatePackage(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(PackagesCollection), id, set)
}

func (mdb *MongodbRepo) DeletePackage(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(PackagesCollection), id)
}

func (mdb *MongodbRepo) PackageExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return docExists(ctx, mdb.collection(PackagesCollection), id)
}

func (mdb *MongodbRepo) CreateMenuItem(ctx context.Context, item *MenuItem) (*MenuItem, error) {
	id, err := insertOne(ctx, mdb.collection(MenuItemsCollection), item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (mdb *MongodbRepo) GetMenuItemByID(ctx context.Context, id primitive.ObjectID) (*MenuItem, error) {
	return findByID[MenuItem](ctx, mdb.collection(MenuItemsCollection), id)
}

func (mdb *MongodbRepo) ListMenuItems(ctx context.Context, filter bson.M, offset, limit int) ([]*MenuItem, int, error) {
	return findMany[MenuItem](ctx, mdb.collection(MenuItemsCollection), filter, offset, limit)
}

func (mdb *MongodbRepo) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(MenuItemsCollection), id, set)
}

func (mdb *MongodbRepo) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(MenuItemsCollection), id)
}

func (mdb *MongodbRepo) CreateRentalItem(ctx context.Context, item *RentalItem) (*RentalItem, error) {
	id, err := insertOne(ctx, mdb.collection(RentalItemsCollection), item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return item, nil
}

func (mdb *MongodbRepo) GetRentalItemByID(ctx context.Context, id primitive.ObjectID) (*RentalItem, error) {
	return findByID[RentalItem](ctx, mdb.collection(RentalItemsCollection), id)
}

func (mdb *MongodbRepo) ListRentalItems(ctx context.Context, filter bson.M, offset, limit int) ([]*RentalItem, int, error) {
	return findMany[RentalItem](ctx, mdb.collection(RentalItemsCollection), filter, offset, limit)
}

func (mdb *MongodbRepo) UpdateRentalItem(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return updateByID(ctx, mdb.collection(RentalItemsCollection), id, set)
}

func (mdb *MongodbRepo) DeleteRentalItem(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, mdb.collection(RentalItemsCollection), id)
}
