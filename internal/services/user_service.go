package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

type UserService struct {
	usersRepo models.UsersRepo
}

func NewUserService(usersRepo models.UsersRepo) *UserService {
	return &UserService{
		usersRepo: usersRepo,
	}
}

// Register creates a user account. caller is nil for anonymous
// registration; only an admin caller may assign a role other than
// "user".
func (us *UserService) Register(ctx context.Context, caller *helpers.Claims, input models.CreateUserInput) (*models.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && (caller == nil || !caller.IsAdmin()) {
		return nil, validation.Forbidden("only admins can assign roles")
	}

	taken, err := us.usersRepo.UserEmailExists(ctx, input.Email, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validation.BadRequest(fmt.Sprintf("Email %s is already in use", input.Email))
	}

	hash, err := helpers.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:  input.Username,
		FullName:  input.FullName,
		Email:     input.Email,
		Password:  hash,
		Phone:     input.Phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return us.usersRepo.CreateUser(ctx, user)
}

func (us *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid user ID format")
	}
	user, err := us.usersRepo.GetUserByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("user not found")
	}
	return user, err
}

func (us *UserService) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int, error) {
	return us.usersRepo.ListUsers(ctx, offset, limit)
}

func (us *UserService) UpdateUser(ctx context.Context, caller helpers.Claims, id string, input models.UpdateUserInput) (*models.User, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid user ID format")
	}

	if !caller.IsAdmin() && !caller.IsOwner(id) {
		return nil, validation.Forbidden("you can only modify your own account")
	}
	if input.Role != nil {
		if !caller.IsAdmin() {
			return nil, validation.Forbidden("only admins can change roles")
		}
		// An admin demoting themselves would lock everyone out.
		if caller.IsOwner(id) {
			return nil, validation.Forbidden("cannot modify your own account role")
		}
	}

	if input.Email != nil {
		taken, err := us.usersRepo.UserEmailExists(ctx, *input.Email, oid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validation.BadRequest(fmt.Sprintf("Email %s is already in use", *input.Email))
		}
	}

	if err := us.usersRepo.UpdateUser(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("user not found")
		}
		return nil, err
	}
	return us.usersRepo.GetUserByID(ctx, oid)
}

func (us *UserService) DeleteUser(ctx context.Context, caller helpers.Claims, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid user ID format")
	}
	if !caller.IsAdmin() {
		return validation.Forbidden("only admins can delete accounts")
	}
	if caller.IsOwner(id) {
		return validation.Forbidden("cannot delete your own account")
	}
	if err := us.usersRepo.DeleteUser(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("user not found")
		}
		return err
	}
	return nil
}
