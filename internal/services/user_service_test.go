package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

func validUserInput() models.CreateUserInput {
	return models.CreateUserInput{
		Username: "kofi",
		FullName: "Kofi Mensah",
		Email:    "kofi@example.com",
		Password: "s3cret-pass",
		Phone:    "0241234567",
	}
}

func TestRegisterDefaultsRole(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), nil, validUserInput())
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	// Password must be stored hashed, never verbatim.
	assert.NotEqual(t, "s3cret-pass", repo.created.Password)
	assert.True(t, helpers.CheckPassword(repo.created.Password, "s3cret-pass"))
}

func TestRegisterRoleAssignmentRequiresAdmin(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := NewUserService(repo)

	input := validUserInput()
	input.Role = models.RoleOrganizer

	_, err := svc.Register(context.Background(), nil, input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)

	caller := claimsFor(primitive.NewObjectID().Hex(), models.RoleAdmin)
	user, err := svc.Register(context.Background(), &caller, input)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOrganizer, user.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{emailTaken: true}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), nil, validUserInput())
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
	assert.Equal(t, "Email kofi@example.com is already in use", verr.Messages[0])
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := NewUserService(&fakeUsersRepo{})

	input := validUserInput()
	input.Phone = "024123" // not 10 digits

	_, err := svc.Register(context.Background(), nil, input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
	assert.Contains(t, verr.Messages, "phone must be exactly 10 digits")
}

func TestUpdateUserOwnershipRules(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	repo := &fakeUsersRepo{users: map[primitive.ObjectID]*models.User{
		owner: {ID: owner, Username: "kofi"},
		other: {ID: other, Username: "ama"},
	}}
	svc := NewUserService(repo)

	username := "kwame"
	input := models.UpdateUserInput{Username: &username}

	// A regular user cannot touch someone else's account.
	_, err := svc.UpdateUser(context.Background(), claimsFor(owner.Hex(), models.RoleUser), other.Hex(), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)

	// Self-update is fine.
	_, err = svc.UpdateUser(context.Background(), claimsFor(owner.Hex(), models.RoleUser), owner.Hex(), input)
	require.NoError(t, err)
	assert.Equal(t, "kwame", repo.updatedSet["username"])
}

func TestUpdateUserRoleChangeGuards(t *testing.T) {
	admin := primitive.NewObjectID()
	target := primitive.NewObjectID()
	repo := &fakeUsersRepo{users: map[primitive.ObjectID]*models.User{
		admin:  {ID: admin},
		target: {ID: target},
	}}
	svc := NewUserService(repo)

	role := models.RoleAdmin
	input := models.UpdateUserInput{Role: &role}

	// Non-admins cannot change roles at all.
	_, err := svc.UpdateUser(context.Background(), claimsFor(target.Hex(), models.RoleUser), target.Hex(), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)

	// Admins cannot change their own role.
	_, err = svc.UpdateUser(context.Background(), claimsFor(admin.Hex(), models.RoleAdmin), admin.Hex(), input)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)

	// Admins can change another user's role.
	_, err = svc.UpdateUser(context.Background(), claimsFor(admin.Hex(), models.RoleAdmin), target.Hex(), input)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, repo.updatedSet["role"])
}

func TestDeleteUserSelfDeleteForbidden(t *testing.T) {
	id := primitive.NewObjectID()
	svc := NewUserService(&fakeUsersRepo{})

	err := svc.DeleteUser(context.Background(), claimsFor(id.Hex(), models.RoleAdmin), id.Hex())
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	target := primitive.NewObjectID()
	repo := &fakeUsersRepo{}
	svc := NewUserService(repo)

	// A regular user cannot delete anyone, their own account included.
	err := svc.DeleteUser(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleUser), target.Hex())
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)
	assert.Empty(t, repo.deleted)

	err = svc.DeleteUser(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleOrganizer), target.Hex())
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)
	assert.Empty(t, repo.deleted)

	// An admin can delete another account.
	require.NoError(t, svc.DeleteUser(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleAdmin), target.Hex()))
	assert.Equal(t, []primitive.ObjectID{target}, repo.deleted)
}

func TestGetUserInvalidID(t *testing.T) {
	svc := NewUserService(&fakeUsersRepo{})

	_, err := svc.GetUser(context.Background(), "not-a-hex-id")
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}
