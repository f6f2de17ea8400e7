package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	FullName  string             `bson:"fullname" json:"fullname"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type CreateUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"fullname" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin organizer"`
}

type UpdateUserInput struct {
	Username *string `json:"username" bson:"username" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"fullname" bson:"fullname" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email" bson:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" bson:"phone" validate:"omitempty,len=10,numeric"`
	Role     *string `json:"role" bson:"role" validate:"omitempty,oneof=user admin organizer"`
}
