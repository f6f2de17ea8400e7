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

type DecorationService struct {
	decorationsRepo models.DecorationsRepo
}

func NewDecorationService(decorationsRepo models.DecorationsRepo) *DecorationService {
	return &DecorationService{
		decorationsRepo: decorationsRepo,
	}
}

func checkUnavailableDates(ranges []models.DateRange) *validation.Error {
	for _, r := range ranges {
		if err := validation.DateRangeOrdered(r.Start, r.End); err != nil {
			return err
		}
	}
	return nil
}

func (ds *DecorationService) CreateDecoration(ctx context.Context, input models.CreateDecorationInput) (*models.Decoration, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.MinMax("space", input.Space.Min, input.Space.Max); err != nil {
		return nil, err
	}
	if err := checkUnavailableDates(input.UnavailableDates); err != nil {
		return nil, err
	}

	now := time.Now()
	decoration := &models.Decoration{
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		Space:            input.Space,
		Items:            input.Items,
		UnavailableDates: input.UnavailableDates,
		Images:           input.Images,
		Reviews:          []models.EmbeddedReview{},
		Rating:           0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return ds.decorationsRepo.CreateDecoration(ctx, decoration)
}

func (ds *DecorationService) GetDecoration(ctx context.Context, id string) (*models.Decoration, error) {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid decoration ID format")
	}
	decoration, err := ds.decorationsRepo.GetDecorationByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("decoration not found")
	}
	return decoration, err
}

func (ds *DecorationService) ListDecorations(ctx context.Context, offset, limit int) ([]*models.Decoration, int, error) {
	return ds.decorationsRepo.ListDecorations(ctx, offset, limit)
}

func (ds *DecorationService) UpdateDecoration(ctx context.Context, id string, input models.UpdateDecorationInput) (*models.Decoration, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if input.Space != nil {
		if err := validation.MinMax("space", input.Space.Min, input.Space.Max); err != nil {
			return nil, err
		}
	}
	if err := checkUnavailableDates(input.UnavailableDates); err != nil {
		return nil, err
	}

	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return nil, validation.BadRequest("invalid decoration ID format")
	}
	if err := ds.decorationsRepo.UpdateDecoration(ctx, oid, models.UpdateDoc(input)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("decoration not found")
		}
		return nil, err
	}
	return ds.decorationsRepo.GetDecorationByID(ctx, oid)
}

func (ds *DecorationService) DeleteDecoration(ctx context.Context, id string) error {
	oid, ok := helpers.ParseObjectID(id)
	if !ok {
		return validation.BadRequest("invalid decoration ID format")
	}
	if err := ds.decorationsRepo.DeleteDecoration(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return validation.NotFound("decoration not found")
		}
		return err
	}
	return nil
}

// AddReview mirrors VenueService.AddReview for decorations.
func (ds *DecorationService) AddReview(ctx context.Context, caller helpers.Claims, decorationID string, input models.EmbeddedReviewInput) (*models.Decoration, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	oid, ok := helpers.ParseObjectID(decorationID)
	if !ok {
		return nil, validation.BadRequest("invalid decoration ID format")
	}
	userID, ok := helpers.ParseObjectID(caller.UserID())
	if !ok {
		return nil, validation.BadRequest("invalid user ID in token")
	}

	decoration, err := ds.decorationsRepo.GetDecorationByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, validation.NotFound("decoration not found")
	}
	if err != nil {
		return nil, err
	}

	ratings := make([]int, 0, len(decoration.Reviews)+1)
	for _, r := range decoration.Reviews {
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
	if err := ds.decorationsRepo.AddDecorationReview(ctx, oid, review, validation.MeanRating(ratings)); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, validation.NotFound("decoration not found")
		}
		return nil, err
	}
	return ds.decorationsRepo.GetDecorationByID(ctx, oid)
}
