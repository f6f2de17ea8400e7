package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

type stubReviewsRepo struct {
	models.ReviewsRepo
}

func (stubReviewsRepo) CreateReview(_ context.Context, review *models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	return review, nil
}

func (stubReviewsRepo) AggregateEventRating(_ context.Context, _ primitive.ObjectID) (int, float64, error) {
	return 1, 5, nil
}

type stubEventsRepo struct {
	models.EventsRepo
}

func (stubEventsRepo) EventExists(_ context.Context, _ primitive.ObjectID) (bool, error) {
	return true, nil
}

func (stubEventsRepo) SetEventRating(_ context.Context, _ primitive.ObjectID, _ float64, _ int) error {
	return nil
}

func TestCreateReviewInvalidatesEventsCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := middleware.NewCacheStore(client, time.Minute)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewReviewService(stubReviewsRepo{}, stubEventsRepo{}, logger)

	listHits := 0
	r := gin.New()
	r.GET("/events", middleware.CachedList(store, "events"), func(c *gin.Context) {
		listHits++
		c.JSON(http.StatusOK, gin.H{"hits": listHits})
	})

	authed := func(c *gin.Context) {
		c.Set("user", helpers.Claims{
			Role: models.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: primitive.NewObjectID().Hex(),
			},
		})
		c.Next()
	}
	r.POST("/reviews", authed, CreateReview(svc, store))

	listEvents := func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	listEvents()
	listEvents()
	require.Equal(t, 1, listHits)

	body := fmt.Sprintf(`{"event_id":%q,"rating":5}`, primitive.NewObjectID().Hex())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// The review changed the event's derived rating, so the next list
	// must come from the handler, not the cache.
	listEvents()
	assert.Equal(t, 2, listHits)
}
