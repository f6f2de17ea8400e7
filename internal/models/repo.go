package models

import (
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	UsersCollection         = "users"
	EventsCollection        = "events"
	VenuesCollection        = "venues"
	PackagesCollection      = "packages"
	MenuItemsCollection     = "menu_items"
	DecorationsCollection   = "decorations"
	PhotographersCollection = "photographers"
	MusicalGroupsCollection = "musical_groups"
	StaffCollection         = "staff"
	RentalItemsCollection   = "rental_items"
	ReviewsCollection       = "reviews"
)

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) collection(name string) *mongo.Collection {
	return mdb.mongodbClient.Database(mdb.dbName).Collection(name)
}
