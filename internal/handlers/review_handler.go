package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

func CreateReview(s *services.ReviewService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		var input models.CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		review, err := s.CreateReview(c.Request.Context(), claims, input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		// The review moved the event's derived rating, so cached event
		// lists are stale.
		cache.Invalidate(c.Request.Context(), eventsCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(review, "Review submitted successfully"))
	}
}

func ListEventReviews(s *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		reviews, total, err := s.ListEventReviews(c.Request.Context(), c.Param("id"), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(reviews, page, limit, total))
	}
}
