package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

type VenueService struct {
	venuesRepo models.VenuesRepo
}

func NewVenueService(venuesRepo models.VenuesRepo) *VenueService {
	return &VenueService{
		venuesRepo: venuesRepo,
	}
}

func (vs *VenueService) CreateVenue(ctx context.Context, input models.CreateVenueInput) (*models.Venue, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.MinMax("capacity", input.Capacity.Min, input.Capacity.Max); err != nil {
		return nil, err
	}

	now := time.Now()
	venue := &models.Venue{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		PricePerDay: input.PricePerDay,
		Capacity:    input.Capacity,
		Images:      input.Images,
		Reviews:     []models.EmbeddedReview{},
		Rating:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return vs.venuesRepo.CreateVenue(ctx, venue)
}

func (vs *VenueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid venue ID format")
	}
	venue, err := vs.venuesRepo.GetVenueByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("venue not found")
	}
	return venue, err
}

func (vs *VenueService) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int, error) {
	return vs.venuesRepo.ListVenues(ctx, offset, limit)
}

func (vs *VenueService) UpdateVenue(ctx context.Context, id string, input models.UpdateVenueInput) (*models.Venue, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Capacity != nil {
		if err := validation.MinMax("capacity", input.Capacity.Min, input.Capacity.Max); err != nil {
			return nil, err
		}
	}

	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid venue ID format")
	}
	if err := vs.venuesRepo.UpdateVenue(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("venue not found")
		}
		return nil, err
	}
	return vs.venuesRepo.GetVenueByID(ctx, oid)
}

func (vs *VenueService) DeleteVenue(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid venue ID format")
	}
	if err := vs.venuesRepo.DeleteVenue(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("venue not found")
		}
		return err
	}
	return nil
}

// AddReview appends an embedded review and recomputes the venue's
// mean rating. The push and the rating update commit as one document
// write.
func (vs *VenueService) AddReview(ctx context.Context, caller helpers.Claims, venueID string, input models.EmbeddedReviewInput) (*models.Venue, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	oid, ok := helpers.ParseObjectID(venueID)
	if !ok {
		return nil, validation.BadRequest("invalid venue ID format")
	}
	userID, ok := helpers.ParseObjectID(caller.UserID())
	if !ok {
		return nil, validation.BadRequest("invalid user ID in token")
	}

	venue, err := vs.venuesRepo.GetVenueByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("venue not found")
	}
	if err != nil {
		return nil, err
	}

	ratings := make([]int, 0, len(venue.Reviews)+1)
	for _, r := range venue.Reviews {
		ratings = append(ratings, r.Rating)
	}
	ratings = append(ratings, input.Rating)

	review := models.EmbeddedReview{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := vs.venuesRepo.AddVenueReview(ctx, oid, review, validation.MeanRating(ratings)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("venue not found")
		}
		return nil, err
	}
	return vs.venuesRepo.GetVenueByID(ctx, oid)
}
