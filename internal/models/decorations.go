package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DecorationItem struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Quantity int    `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

type Decoration struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description" json:"description"`
	Price            float64            `bson:"price" json:"price"`
	Space            MinMax             `bson:"space" json:"space"`
	Items            []DecorationItem   `bson:"items" json:"items"`
	UnavailableDates []DateRange        `bson:"unavailable_dates" json:"unavailable_dates"`
	Images           []string           `bson:"images" json:"images"`
	Reviews          []EmbeddedReview   `bson:"reviews" json:"reviews"`
	// Mean of embedded review ratings, maintained by the write path.
	Rating    float64   `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateDecorationInput struct {
	Name             string           `json:"name" validate:"required,min=3,max=200"`
	Description      string           `json:"description" validate:"max=2000"`
	Price            float64          `json:"price" validate:"gte=0"`
	Space            MinMax           `json:"space"`
	Items            []DecorationItem `json:"items" validate:"dive"`
	UnavailableDates []DateRange      `json:"unavailable_dates" validate:"dive"`
	Images           []string         `json:"images"`
}

type UpdateDecorationInput struct {
	Name             *string          `json:"name" bson:"name" validate:"omitempty,min=3,max=200"`
	Description      *string          `json:"description" bson:"description" validate:"omitempty,max=2000"`
	Price            *float64         `json:"price" bson:"price" validate:"omitempty,gte=0"`
	Space            *MinMax          `json:"space" bson:"space"`
	Items            []DecorationItem `json:"items" bson:"items" validate:"omitempty,dive"`
	UnavailableDates []DateRange      `json:"unavailable_dates" bson:"unavailable_dates" validate:"omitempty,dive"`
	Images           []string         `json:"images" bson:"images"`
}
