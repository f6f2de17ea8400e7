package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

// ReviewService handles standalone event reviews and keeps the
// derived rating on the Event document consistent with them.
type ReviewService struct {
	reviewsRepo models.ReviewsRepo
	eventsRepo  models.EventsRepo
	logger      *slog.Logger
}

func NewReviewService(reviewsRepo models.ReviewsRepo, eventsRepo models.EventsRepo, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		reviewsRepo: reviewsRepo,
		eventsRepo:  eventsRepo,
		logger:      logger,
	}
}

// CreateReview persists the review and then recomputes the event's
// rating from the full review set. If the recompute fails the review
// is still committed; the reconciler repairs the aggregate on its next
// pass, so the caller gets a success either way.
func (rs *ReviewService) CreateReview(ctx context.Context, caller helpers.Claims, input models.CreateReviewInput) (*models.Review, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	eventID, ok := helpers.ParseObjectID(input.EventID)
	if !ok {
		return nil, validation.BadRequest("invalid event_id format")
	}
	userID, ok := helpers.ParseObjectID(caller.UserID())
	if !ok {
		return nil, validation.BadRequest("invalid user ID in token")
	}

	exists, err := rs.eventsRepo.EventExists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, validation.NotFound("event not found")
	}

	review := &models.Review{
		EventID:   eventID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	created, err := rs.reviewsRepo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := rs.recomputeEventRating(ctx, review.EventID); err != nil {
		rs.logger.Warn("event rating recompute failed, reconciler will repair",
			"event_id", review.EventID.Hex(),
			"error", err,
		)
	}
	return created, nil
}

func (rs *ReviewService) ListEventReviews(ctx context.Context, eventID string, offset, limit int) ([]*models.Review, int, error) {
	oid, ok := helpers.ParseObjectID(eventID)
	if !ok {
		return nil, 0, validation.BadRequest("invalid event ID format")
	}
	return rs.reviewsRepo.ListReviewsByEvent(ctx, oid, offset, limit)
}

func (rs *ReviewService) recomputeEventRating(ctx context.Context, eventID primitive.ObjectID) error {
	count, avg, err := rs.reviewsRepo.AggregateEventRating(ctx, eventID)
	if err != nil {
		return err
	}
	return rs.eventsRepo.SetEventRating(ctx, eventID, validation.Round1(avg), count)
}

// ReconcileEventRatings re-derives every event's rating from the
// reviews collection. Each event is handled independently so one
// failure does not block the rest; the pass is idempotent.
func (rs *ReviewService) ReconcileEventRatings(ctx context.Context) error {
	ids, err := rs.eventsRepo.ListEventIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := rs.recomputeEventRating(ctx, id); err != nil {
			rs.logger.Warn("rating reconciliation failed for event",
				"event_id", id.Hex(),
				"error", err,
			)
		}
	}
	return nil
}

// RunReconciler periodically repairs any event rating left stale by a
// failed post-review recompute. Returns when ctx is cancelled.
func (rs *ReviewService) RunReconciler(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := rs.ReconcileEventRatings(ctx); err != nil {
				rs.logger.Error("rating reconciliation pass failed", "error", err)
			}
		}
	}
}
