package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

var testClock = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newTestEventService(events *fakeEventsRepo, venues *fakeVenuesRepo, catalog *fakeCatalogRepo, vendors *fakeVendorsRepo, decorations *fakeDecorationsRepo, users *fakeUsersRepo) *EventService {
	svc := NewEventService(events, venues, catalog, vendors, decorations, users)
	svc.now = func() time.Time { return testClock }
	return svc
}

func validEventInput() models.CreateEventInput {
	return models.CreateEventInput{
		Title:      "Mensah Wedding",
		Type:       "wedding",
		Date:       testClock.AddDate(0, 1, 0),
		Time:       models.TimeRange{Start: "14:00", End: "22:00"},
		GuestCount: 150,
		TotalCost:  12000,
		VenueID:    primitive.NewObjectID().Hex(),
		PackageID:  primitive.NewObjectID().Hex(),
	}
}

func TestCreateEvent(t *testing.T) {
	events := &fakeEventsRepo{}
	svc := newTestEventService(events, &fakeVenuesRepo{exists: true}, &fakeCatalogRepo{packageExists: true}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, &fakeUsersRepo{})

	caller := claimsFor(primitive.NewObjectID().Hex(), models.RoleUser)
	event, err := svc.CreateEvent(context.Background(), caller, validEventInput())
	require.NoError(t, err)

	assert.Equal(t, models.EventStatusPending, event.Status)
	assert.Equal(t, models.PaymentStatusPending, event.Payment.Status)
	assert.Equal(t, caller.UserID(), event.ClientID.Hex())
	assert.Zero(t, event.Rating)
	assert.Zero(t, event.ReviewCount)
}

func TestCreateEventRejectsPastDate(t *testing.T) {
	svc := newTestEventService(&fakeEventsRepo{}, &fakeVenuesRepo{exists: true}, &fakeCatalogRepo{packageExists: true}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, &fakeUsersRepo{})

	input := validEventInput()
	input.Date = testClock.AddDate(0, 0, -1)

	_, err := svc.CreateEvent(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleUser), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Event date cannot be in the past", verr.Messages[0])
}

func TestCreateEventRejectsUnorderedTimes(t *testing.T) {
	svc := newTestEventService(&fakeEventsRepo{}, &fakeVenuesRepo{exists: true}, &fakeCatalogRepo{packageExists: true}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, &fakeUsersRepo{})

	input := validEventInput()
	input.Time = models.TimeRange{Start: "14:00", End: "13:00"}

	_, err := svc.CreateEvent(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleUser), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "End time must be after start time", verr.Messages[0])
}

func TestCreateEventMissingVenue(t *testing.T) {
	svc := newTestEventService(&fakeEventsRepo{}, &fakeVenuesRepo{exists: false}, &fakeCatalogRepo{packageExists: true}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, &fakeUsersRepo{})

	_, err := svc.CreateEvent(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleUser), validEventInput())
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindNotFound, verr.Kind)
	assert.Equal(t, "venue not found", verr.Messages[0])
}

func TestCreateEventForAnotherClient(t *testing.T) {
	clientID := primitive.NewObjectID()
	users := &fakeUsersRepo{users: map[primitive.ObjectID]*models.User{clientID: {ID: clientID}}}
	events := &fakeEventsRepo{}
	svc := newTestEventService(events, &fakeVenuesRepo{exists: true}, &fakeCatalogRepo{packageExists: true}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, users)

	input := validEventInput()
	input.ClientID = clientID.Hex()

	// Regular users cannot book on behalf of someone else.
	_, err := svc.CreateEvent(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleUser), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)

	// Admins can.
	event, err := svc.CreateEvent(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleAdmin), input)
	require.NoError(t, err)
	assert.Equal(t, clientID, event.ClientID)
}

func TestUpdateEventOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	events := &fakeEventsRepo{events: map[primitive.ObjectID]*models.Event{
		eventID: {ID: eventID, ClientID: owner},
	}}
	svc := newTestEventService(events, &fakeVenuesRepo{}, &fakeCatalogRepo{}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, &fakeUsersRepo{})

	status := "confirmed"
	input := models.UpdateEventInput{Status: &status}

	_, err := svc.UpdateEvent(context.Background(), claimsFor(primitive.NewObjectID().Hex(), models.RoleUser), eventID.Hex(), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindForbidden, verr.Kind)

	_, err = svc.UpdateEvent(context.Background(), claimsFor(owner.Hex(), models.RoleUser), eventID.Hex(), input)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", events.updatedSet["status"])
}

func TestUpdateEventValidatesPresentFieldsOnly(t *testing.T) {
	owner := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	events := &fakeEventsRepo{events: map[primitive.ObjectID]*models.Event{
		eventID: {ID: eventID, ClientID: owner},
	}}
	svc := newTestEventService(events, &fakeVenuesRepo{}, &fakeCatalogRepo{}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, &fakeUsersRepo{})

	past := testClock.AddDate(0, 0, -3)
	input := models.UpdateEventInput{Date: &past}

	_, err := svc.UpdateEvent(context.Background(), claimsFor(owner.Hex(), models.RoleUser), eventID.Hex(), input)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Event date cannot be in the past", verr.Messages[0])

	// A title-only patch must not trip date or time checks.
	title := "Updated Title"
	_, err = svc.UpdateEvent(context.Background(), claimsFor(owner.Hex(), models.RoleUser), eventID.Hex(), models.UpdateEventInput{Title: &title})
	require.NoError(t, err)
}

func TestListEventsRejectsUnknownType(t *testing.T) {
	svc := newTestEventService(&fakeEventsRepo{}, &fakeVenuesRepo{}, &fakeCatalogRepo{}, &fakeVendorsRepo{}, &fakeDecorationsRepo{}, &fakeUsersRepo{})

	_, _, err := svc.ListEvents(context.Background(), "festival", 0, 10)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindBadRequest, verr.Kind)
}
