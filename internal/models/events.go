package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusConfirmed  EventStatus = "confirmed"
	EventStatusInProgress EventStatus = "in-progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// PaymentRecord is one entry in the payment history.
type PaymentRecord struct {
	Amount float64   `bson:"amount" json:"amount" validate:"gte=0"`
	Method string    `bson:"method" json:"method"`
	PaidAt time.Time `bson:"paid_at" json:"paid_at"`
}

type Payment struct {
	Status  string          `bson:"status" json:"status" validate:"omitempty,oneof=pending partial paid refunded"`
	Amount  float64         `bson:"amount" json:"amount" validate:"gte=0"`
	History []PaymentRecord `bson:"history" json:"history" validate:"dive"`
}

// ItemSnapshot denormalizes the name and price of a rental or menu
// item as they were at booking time, so later catalog edits do not
// rewrite history.
type ItemSnapshot struct {
	Name     string  `bson:"name" json:"name" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"gte=0"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

type Guest struct {
	Name  string `bson:"name" json:"name" validate:"required"`
	Email string `bson:"email" json:"email" validate:"omitempty,email"`
}

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        TimeRange          `bson:"time" json:"time"`
	GuestCount  int                `bson:"guest_count" json:"guest_count"`
	TotalCost   float64            `bson:"total_cost" json:"total_cost"`
	Payment     Payment            `bson:"payment" json:"payment"`
	Status      EventStatus        `bson:"status" json:"status"`

	VenueID        primitive.ObjectID   `bson:"venue_id" json:"venue_id"`
	PackageID      primitive.ObjectID   `bson:"package_id" json:"package_id"`
	ClientID       primitive.ObjectID   `bson:"client_id" json:"client_id"`
	DecorationID   primitive.ObjectID   `bson:"decoration_id,omitempty" json:"decoration_id,omitempty"`
	PhotographerID primitive.ObjectID   `bson:"photographer_id,omitempty" json:"photographer_id,omitempty"`
	MusicalGroupID primitive.ObjectID   `bson:"musical_group_id,omitempty" json:"musical_group_id,omitempty"`
	StaffIDs       []primitive.ObjectID `bson:"staff_ids,omitempty" json:"staff_ids,omitempty"`

	RentalItems []ItemSnapshot `bson:"rental_items" json:"rental_items"`
	MenuItems   []ItemSnapshot `bson:"menu_items" json:"menu_items"`
	Guests      []Guest        `bson:"guests" json:"guests"`

	// Derived from the reviews collection, never client-supplied.
	Rating      float64 `bson:"rating" json:"rating"`
	ReviewCount int     `bson:"review_count" json:"review_count"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateEventInput struct {
	Title       string    `json:"title" validate:"required,min=3,max=200"`
	Type        string    `json:"type" validate:"required,oneof=wedding birthday corporate concert graduation other"`
	Description string    `json:"description" validate:"max=2000"`
	Date        time.Time `json:"date" validate:"required"`
	Time        TimeRange `json:"time" validate:"required"`
	GuestCount  int       `json:"guest_count" validate:"required,min=1"`
	TotalCost   float64   `json:"total_cost" validate:"gte=0"`
	Payment     Payment   `json:"payment"`

	VenueID        string   `json:"venue_id" validate:"required"`
	PackageID      string   `json:"package_id" validate:"required"`
	ClientID       string   `json:"client_id"`
	DecorationID   string   `json:"decoration_id"`
	PhotographerID string   `json:"photographer_id"`
	MusicalGroupID string   `json:"musical_group_id"`
	StaffIDs       []string `json:"staff_ids"`

	RentalItems []ItemSnapshot `json:"rental_items" validate:"dive"`
	MenuItems   []ItemSnapshot `json:"menu_items" validate:"dive"`
	Guests      []Guest        `json:"guests" validate:"dive"`
}

type UpdateEventInput struct {
	Title       *string    `json:"title" bson:"title" validate:"omitempty,min=3,max=200"`
	Type        *string    `json:"type" bson:"type" validate:"omitempty,oneof=wedding birthday corporate concert graduation other"`
	Description *string    `json:"description" bson:"description" validate:"omitempty,max=2000"`
	Date        *time.Time `json:"date" bson:"date"`
	Time        *TimeRange `json:"time" bson:"time"`
	GuestCount  *int       `json:"guest_count" bson:"guest_count" validate:"omitempty,min=1"`
	TotalCost   *float64   `json:"total_cost" bson:"total_cost" validate:"omitempty,gte=0"`
	Payment     *Payment   `json:"payment" bson:"payment"`
	Status      *string    `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed in-progress completed cancelled"`

	RentalItems []ItemSnapshot `json:"rental_items" bson:"rental_items" validate:"omitempty,dive"`
	MenuItems   []ItemSnapshot `json:"menu_items" bson:"menu_items" validate:"omitempty,dive"`
	Guests      []Guest        `json:"guests" bson:"guests" validate:"omitempty,dive"`
}
