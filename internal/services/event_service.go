package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

var eventTypes = map[string]bool{
	"wedding":    true,
	"birthday":   true,
	"corporate":  true,
	"concert":    true,
	"graduation": true,
	"other":      true,
}

type EventService struct {
	eventsRepo      models.EventsRepo
	venuesRepo      models.VenuesRepo
	catalogRepo     models.CatalogRepo
	vendorsRepo     models.VendorsRepo
	decorationsRepo models.DecorationsRepo
	usersRepo       models.UsersRepo
	now             func() time.Time
}

func NewEventService(
	eventsRepo models.EventsRepo,
	venuesRepo models.VenuesRepo,
	catalogRepo models.CatalogRepo,
	vendorsRepo models.VendorsRepo,
	decorationsRepo models.DecorationsRepo,
	usersRepo models.UsersRepo,
) *EventService {
	return &EventService{
		eventsRepo:      eventsRepo,
		venuesRepo:      venuesRepo,
		catalogRepo:     catalogRepo,
		vendorsRepo:     vendorsRepo,
		decorationsRepo: decorationsRepo,
		usersRepo:       usersRepo,
		now:             time.Now,
	}
}

// CreateEvent runs the full write pipeline: field rules, stateless
// date/time checks, then reference existence checks, then the insert.
// Any failure aborts with no partial effect.
func (es *EventService) CreateEvent(ctx context.Context, caller helpers.Claims, input models.CreateEventInput) (*models.Event, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.EventDateNotPast(input.Date, es.now()); err != nil {
		return nil, err
	}
	if err := validation.TimeOrdered(input.Time.Start, input.Time.End); err != nil {
		return nil, err
	}

	venueID, ok := helpers.ParseObjectID(input.VenueID)
	if !ok {
		return nil, validation.BadRequest("invalid venue_id format")
	}
	packageID, ok := helpers.ParseObjectID(input.PackageID)
	if !ok {
		return nil, validation.BadRequest("invalid package_id format")
	}
	if err := es.requireExists(ctx, es.venuesRepo.VenueExists, venueID, "venue not found"); err != nil {
		return nil, err
	}
	if err := es.requireExists(ctx, es.catalogRepo.PackageExists, packageID, "package not found"); err != nil {
		return nil, err
	}

	// Events are created on behalf of the caller; only admins can book
	// for another client.
	clientID, ok := helpers.ParseObjectID(caller.UserID())
	if !ok {
		return nil, validation.BadRequest("invalid user ID in token")
	}
	if input.ClientID != "" && input.ClientID != caller.UserID() {
		if !caller.IsAdmin() {
			return nil, validation.Forbidden("only admins can create events for other clients")
		}
		clientID, ok = helpers.ParseObjectID(input.ClientID)
		if !ok {
			return nil, validation.BadRequest("invalid client_id format")
		}
		if err := es.requireExists(ctx, es.usersRepo.UserExists, clientID, "client not found"); err != nil {
			return nil, err
		}
	}

	event := &models.Event{
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		GuestCount:  input.GuestCount,
		TotalCost:   input.TotalCost,
		Payment:     input.Payment,
		Status:      models.EventStatusPending,
		VenueID:     venueID,
		PackageID:   packageID,
		ClientID:    clientID,
		RentalItems: input.RentalItems,
		MenuItems:   input.MenuItems,
		Guests:      input.Guests,
		CreatedAt:   es.now(),
		UpdatedAt:   es.now(),
	}
	if event.Payment.Status == "" {
		event.Payment.Status = models.PaymentStatusPending
	}

	if err := es.resolveOptionalRefs(ctx, event, input); err != nil {
		return nil, err
	}

	return es.eventsRepo.CreateEvent(ctx, event)
}

func (es *EventService) resolveOptionalRefs(ctx context.Context, event *models.Event, input models.CreateEventInput) error {
	if input.DecorationID != "" {
		id, ok := helpers.ParseObjectID(input.DecorationID)
		if !ok {
			return validation.BadRequest("invalid decoration_id format")
		}
		if err := es.requireExists(ctx, es.decorationsRepo.DecorationExists, id, "decoration not found"); err != nil {
			return err
		}
		event.DecorationID = id
	}
	if input.PhotographerID != "" {
		id, ok := helpers.ParseObjectID(input.PhotographerID)
		if !ok {
			return validation.BadRequest("invalid photographer_id format")
		}
		if err := es.requireExists(ctx, es.vendorsRepo.PhotographerExists, id, "photographer not found"); err != nil {
			return err
		}
		event.PhotographerID = id
	}
	if input.MusicalGroupID != "" {
		id, ok := helpers.ParseObjectID(input.MusicalGroupID)
		if !ok {
			return validation.BadRequest("invalid musical_group_id format")
		}
		if err := es.requireExists(ctx, es.vendorsRepo.MusicalGroupExists, id, "musical group not found"); err != nil {
			return err
		}
		event.MusicalGroupID = id
	}
	for _, raw := range input.StaffIDs {
		id, ok := helpers.ParseObjectID(raw)
		if !ok {
			return validation.BadRequest("invalid staff id format")
		}
		if err := es.requireExists(ctx, es.vendorsRepo.StaffExists, id, "staff member not found"); err != nil {
			return err
		}
		event.StaffIDs = append(event.StaffIDs, id)
	}
	return nil
}

func (es *EventService) requireExists(ctx context.Context, check func(context.Context, primitive.ObjectID) (bool, error), id primitive.ObjectID, msg string) error {
	found, err := check(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return validation.NotFound(msg)
	}
	return nil
}

func (es *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid event ID format")
	}
	event, err := es.eventsRepo.GetEventByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("event not found")
	}
	return event, err
}

func (es *EventService) ListEvents(ctx context.Context, eventType string, offset, limit int) ([]*models.Event, int, error) {
	filter := bson.M{}
	if eventType != "" {
		if !eventTypes[eventType] {
			return nil, 0, validation.BadRequest("invalid event type")
		}
		filter["type"] = eventType
	}
	return es.eventsRepo.ListEvents(ctx, filter, offset, limit)
}

func (es *EventService) UpdateEvent(ctx context.Context, caller helpers.Claims, id string, input models.UpdateEventInput) (*models.Event, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid event ID format")
	}
	event, err := es.eventsRepo.GetEventByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("event not found")
	}
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && !caller.IsOwner(event.ClientID.Hex()) {
		return nil, validation.Forbidden("you can only modify your own events")
	}

	if input.Date != nil {
		if err := validation.EventDateNotPast(*input.Date, es.now()); err != nil {
			return nil, err
		}
	}
	if input.Time != nil {
		if err := validation.TimeOrdered(input.Time.Start, input.Time.End); err != nil {
			return nil, err
		}
	}

	if err := es.eventsRepo.UpdateEvent(ctx, oid, models.UpdateDoc(input)); err != nil {
		return nil, err
	}
	return es.eventsRepo.GetEventByID(ctx, oid)
}

func (es *EventService) DeleteEvent(ctx context.Context, caller helpers.Claims, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid event ID format")
	}
	event, err := es.eventsRepo.GetEventByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return validation.NotFound("event not found")
	}
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && !caller.IsOwner(event.ClientID.Hex()) {
		return validation.Forbidden("you can only delete your own events")
	}
	// Reviews referencing the event are kept as history.
	return es.eventsRepo.DeleteEvent(ctx, oid)
}
