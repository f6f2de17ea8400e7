package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Photographer struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	PricePerEvent float64            `bson:"price_per_event" json:"price_per_event"`
	Portfolio     []string           `bson:"portfolio" json:"portfolio"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreatePhotographerInput struct {
	Name          string   `json:"name" validate:"required,min=3,max=200"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"required,len=10,numeric"`
	PricePerEvent float64  `json:"price_per_event" validate:"gte=0"`
	Portfolio     []string `json:"portfolio"`
}

type UpdatePhotographerInput struct {
	Name          *string  `json:"name" bson:"name" validate:"omitempty,min=3,max=200"`
	Email         *string  `json:"email" bson:"email" validate:"omitempty,email"`
	Phone         *string  `json:"phone" bson:"phone" validate:"omitempty,len=10,numeric"`
	PricePerEvent *float64 `json:"price_per_event" bson:"price_per_event" validate:"omitempty,gte=0"`
	Portfolio     []string `json:"portfolio" bson:"portfolio"`
}

type MusicalGroup struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	Genre         string             `bson:"genre" json:"genre"`
	MembersCount  int                `bson:"members_count" json:"members_count"`
	PricePerEvent float64            `bson:"price_per_event" json:"price_per_event"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreateMusicalGroupInput struct {
	Name          string  `json:"name" validate:"required,min=2,max=200"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone" validate:"required,len=10,numeric"`
	Genre         string  `json:"genre" validate:"required"`
	MembersCount  int     `json:"members_count" validate:"required,min=1"`
	PricePerEvent float64 `json:"price_per_event" validate:"gte=0"`
}

type UpdateMusicalGroupInput struct {
	Name          *string  `json:"name" bson:"name" validate:"omitempty,min=2,max=200"`
	Email         *string  `json:"email" bson:"email" validate:"omitempty,email"`
	Phone         *string  `json:"phone" bson:"phone" validate:"omitempty,len=10,numeric"`
	Genre         *string  `json:"genre" bson:"genre"`
	MembersCount  *int     `json:"members_count" bson:"members_count" validate:"omitempty,min=1"`
	PricePerEvent *float64 `json:"price_per_event" bson:"price_per_event" validate:"omitempty,gte=0"`
}

type Staff struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Position  string             `bson:"position" json:"position"`
	Salary    float64            `bson:"salary" json:"salary"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Staff phone numbers come from the local HR system which stores them
// in national format, hence the leading-zero requirement.
type CreateStaffInput struct {
	Name     string  `json:"name" validate:"required,min=3,max=200"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,len=10,numeric,startswith=0"`
	Position string  `json:"position" validate:"required,oneof=coordinator waiter chef security technician"`
	Salary   float64 `json:"salary" validate:"gte=0"`
}

type UpdateStaffInput struct {
	Name     *string  `json:"name" bson:"name" validate:"omitempty,min=3,max=200"`
	Email    *string  `json:"email" bson:"email" validate:"omitempty,email"`
	Phone    *string  `json:"phone" bson:"phone" validate:"omitempty,len=10,numeric,startswith=0"`
	Position *string  `json:"position" bson:"position" validate:"omitempty,oneof=coordinator waiter chef security technician"`
	Salary   *float64 `json:"salary" bson:"salary" validate:"omitempty,gte=0"`
}
