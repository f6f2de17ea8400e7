package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Package struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Guests      MinMax             `bson:"guests" json:"guests"`
	Services    []string           `bson:"services" json:"services"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreatePackageInput struct {
	Name        string   `json:"name" validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Price       float64  `json:"price" validate:"gte=0"`
	Guests      MinMax   `json:"guests" validate:"required"`
	Services    []string `json:"services"`
}

type UpdatePackageInput struct {
	Name        *string  `json:"name" bson:"name" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description" bson:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" bson:"price" validate:"omitempty,gte=0"`
	Guests      *MinMax  `json:"guests" bson:"guests"`
	Services    []string `json:"services" bson:"services"`
}

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Category    string  `json:"category" validate:"required,oneof=starter main dessert beverage"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"max=1000"`
	Image       string  `json:"image"`
}

type UpdateMenuItemInput struct {
	Name        *string  `json:"name" bson:"name" validate:"omitempty,min=2,max=200"`
	Category    *string  `json:"category" bson:"category" validate:"omitempty,oneof=starter main dessert beverage"`
	Price       *float64 `json:"price" bson:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description" bson:"description" validate:"omitempty,max=1000"`
	Image       *string  `json:"image" bson:"image"`
}

type RentalItem struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Category          string             `bson:"category" json:"category"`
	PricePerUnit      float64            `bson:"price_per_unit" json:"price_per_unit"`
	QuantityAvailable int                `bson:"quantity_available" json:"quantity_available"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreateRentalItemInput struct {
	Name              string  `json:"name" validate:"required,min=2,max=200"`
	Category          string  `json:"category" validate:"required,oneof=furniture lighting sound tableware other"`
	PricePerUnit      float64 `json:"price_per_unit" validate:"gte=0"`
	QuantityAvailable int     `json:"quantity_available" validate:"gte=0"`
}

type UpdateRentalItemInput struct {
	Name              *string  `json:"name" bson:"name" validate:"omitempty,min=2,max=200"`
	Category          *string  `json:"category" bson:"category" validate:"omitempty,oneof=furniture lighting sound tableware other"`
	PricePerUnit      *float64 `json:"price_per_unit" bson:"price_per_unit" validate:"omitempty,gte=0"`
	QuantityAvailable *int     `json:"quantity_available" bson:"quantity_available" validate:"omitempty,gte=0"`
}
