package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

const venuesCacheEntity = "venues"

func CreateVenue(s *services.VenueService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateVenueInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		venue, err := s.CreateVenue(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), venuesCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(venue, "Venue created successfully"))
	}
}

func ListVenues(s *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		venues, total, err := s.ListVenues(c.Request.Context(), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(venues, page, limit, total))
	}
}

func GetVenue(s *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venue, err := s.GetVenue(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func UpdateVenue(s *services.VenueService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateVenueInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		venue, err := s.UpdateVenue(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), venuesCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(venue, "Venue updated successfully"))
	}
}

func DeleteVenue(s *services.VenueService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteVenue(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), venuesCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Venue deleted successfully"))
	}
}

func AddVenueReview(s *services.VenueService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		var input models.EmbeddedReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		venue, err := s.AddReview(c.Request.Context(), claims, c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), venuesCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(venue, "Review added successfully"))
	}
}
