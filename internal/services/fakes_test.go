package services

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
)

// The fakes embed the repo interface so only the methods a test
// exercises need implementing; calling anything else panics, which is
// exactly what we want from a test double.

func claimsFor(userID, role string) helpers.Claims {
	return helpers.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	}
}

type fakeUsersRepo struct {
	models.UsersRepo
	emailTaken bool
	users      map[primitive.ObjectID]*models.User
	created    *models.User
	updatedSet bson.M
	deleted    []primitive.ObjectID
}

func (f *fakeUsersRepo) UserEmailExists(_ context.Context, email string, exclude primitive.ObjectID) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeUsersRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	f.created = user
	return user, nil
}

func (f *fakeUsersRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUsersRepo) UpdateUser(_ context.Context, id primitive.ObjectID, set bson.M) error {
	if _, ok := f.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.updatedSet = set
	return nil
}

func (f *fakeUsersRepo) DeleteUser(_ context.Context, id primitive.ObjectID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUsersRepo) UserExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

type fakeVenuesRepo struct {
	models.VenuesRepo
	exists       bool
	venues       map[primitive.ObjectID]*models.Venue
	addedReview  *models.EmbeddedReview
	addedRating  float64
	addedVenueID primitive.ObjectID
}

func (f *fakeVenuesRepo) VenueExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.exists, nil
}

func (f *fakeVenuesRepo) GetVenueByID(_ context.Context, id primitive.ObjectID) (*models.Venue, error) {
	if v, ok := f.venues[id]; ok {
		return v, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeVenuesRepo) AddVenueReview(_ context.Context, id primitive.ObjectID, review models.EmbeddedReview, rating float64) error {
	if _, ok := f.venues[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.addedVenueID = id
	f.addedReview = &review
	f.addedRating = rating
	return nil
}

type fakeCatalogRepo struct {
	models.CatalogRepo
	packageExists bool
}

func (f *fakeCatalogRepo) PackageExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.packageExists, nil
}

type fakeVendorsRepo struct {
	models.VendorsRepo
	photographerExists bool
	musicalGroupExists bool
	staffExists        bool
}

func (f *fakeVendorsRepo) PhotographerExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.photographerExists, nil
}

func (f *fakeVendorsRepo) MusicalGroupExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.musicalGroupExists, nil
}

func (f *fakeVendorsRepo) StaffExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.staffExists, nil
}

type fakeDecorationsRepo struct {
	models.DecorationsRepo
	exists bool
}

func (f *fakeDecorationsRepo) DecorationExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.exists, nil
}

type fakeEventsRepo struct {
	models.EventsRepo
	created    *models.Event
	exists     bool
	eventIDs   []primitive.ObjectID
	ratings    map[primitive.ObjectID]float64
	counts     map[primitive.ObjectID]int
	ratingErr  error
	events     map[primitive.ObjectID]*models.Event
	updatedSet bson.M
}

func (f *fakeEventsRepo) CreateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	event.ID = primitive.NewObjectID()
	f.created = event
	return event, nil
}

func (f *fakeEventsRepo) EventExists(_ context.Context, id primitive.ObjectID) (bool, error) {
	return f.exists, nil
}

func (f *fakeEventsRepo) GetEventByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEventsRepo) UpdateEvent(_ context.Context, id primitive.ObjectID, set bson.M) error {
	if _, ok := f.events[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.updatedSet = set
	return nil
}

func (f *fakeEventsRepo) SetEventRating(_ context.Context, id primitive.ObjectID, rating float64, count int) error {
	if f.ratingErr != nil {
		return f.ratingErr
	}
	if f.ratings == nil {
		f.ratings = map[primitive.ObjectID]float64{}
		f.counts = map[primitive.ObjectID]int{}
	}
	f.ratings[id] = rating
	f.counts[id] = count
	return nil
}

func (f *fakeEventsRepo) ListEventIDs(_ context.Context) ([]primitive.ObjectID, error) {
	return f.eventIDs, nil
}

type fakeReviewsRepo struct {
	models.ReviewsRepo
	reviews []*models.Review
}

func (f *fakeReviewsRepo) CreateReview(_ context.Context, review *models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeReviewsRepo) ListReviewsByEvent(_ context.Context, eventID primitive.ObjectID, offset, limit int) ([]*models.Review, int, error) {
	var out []*models.Review
	for _, r := range f.reviews {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

func (f *fakeReviewsRepo) AggregateEventRating(_ context.Context, eventID primitive.ObjectID) (int, float64, error) {
	var sum, count int
	for _, r := range f.reviews {
		if r.EventID == eventID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}
