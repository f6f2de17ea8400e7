package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmbeddedReview is a review stored inside its parent document (Venue
// or Decoration) rather than in the reviews collection.
type EmbeddedReview struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// EmbeddedReviewInput is the payload for POST /venues/:id/reviews and
// POST /decorations/:id/reviews.
type EmbeddedReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

type Venue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Location    string             `bson:"location" json:"location"`
	PricePerDay float64            `bson:"price_per_day" json:"price_per_day"`
	Capacity    MinMax             `bson:"capacity" json:"capacity"`
	Images      []string           `bson:"images" json:"images"`
	Reviews     []EmbeddedReview   `bson:"reviews" json:"reviews"`
	// Mean of embedded review ratings, maintained by the write path.
	Rating    float64   `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateVenueInput struct {
	Name        string   `json:"name" validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Location    string   `json:"location" validate:"required"`
	PricePerDay float64  `json:"price_per_day" validate:"gte=0"`
	Capacity    MinMax   `json:"capacity" validate:"required"`
	Images      []string `json:"images"`
}

type UpdateVenueInput struct {
	Name        *string  `json:"name" bson:"name" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description" bson:"description" validate:"omitempty,max=2000"`
	Location    *string  `json:"location" bson:"location"`
	PricePerDay *float64 `json:"price_per_day" bson:"price_per_day" validate:"omitempty,gte=0"`
	Capacity    *MinMax  `json:"capacity" bson:"capacity"`
	Images      []string `json:"images" bson:"images"`
}
