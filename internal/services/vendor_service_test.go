package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

type fakeEmailVendorsRepo struct {
	fakeVendorsRepo
	emailTaken   bool
	createdStaff *models.Staff
}

func (f *fakeEmailVendorsRepo) StaffEmailExists(_ context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeEmailVendorsRepo) CreateStaff(_ context.Context, s *models.Staff) (*models.Staff, error) {
	s.ID = primitive.NewObjectID()
	f.createdStaff = s
	return s, nil
}

func validStaffInput() models.CreateStaffInput {
	return models.CreateStaffInput{
		Name:     "Ama Serwaa",
		Email:    "ama@example.com",
		Phone:    "0501234567",
		Position: "coordinator",
		Salary:   2500,
	}
}

func TestCreateStaff(t *testing.T) {
	repo := &fakeEmailVendorsRepo{}
	svc := NewVendorService(repo)

	staff, err := svc.CreateStaff(context.Background(), validStaffInput())
	require.NoError(t, err)
	assert.Equal(t, "coordinator", staff.Position)
}

func TestCreateStaffDuplicateEmail(t *testing.T) {
	svc := NewVendorService(&fakeEmailVendorsRepo{emailTaken: true})

	_, err := svc.CreateStaff(context.Background(), validStaffInput())
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
	assert.Equal(t, "Email ama@example.com is already in use", verr.Messages[0])
}

func TestCreateStaffPhoneMustStartWithZero(t *testing.T) {
	svc := NewVendorService(&fakeEmailVendorsRepo{})

	input := validStaffInput()
	input.Phone = "5012345678"

	_, err := svc.CreateStaff(context.Background(), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}

func TestCreateStaffInvalidPosition(t *testing.T) {
	svc := NewVendorService(&fakeEmailVendorsRepo{})

	input := validStaffInput()
	input.Position = "manager"

	_, err := svc.CreateStaff(context.Background(), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}

func TestListStaffPositionFilter(t *testing.T) {
	svc := NewVendorService(&fakeEmailVendorsRepo{})

	_, _, err := svc.ListStaff(context.Background(), "janitor", 0, 10)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}
