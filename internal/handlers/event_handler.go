package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

const eventsCacheEntity = "events"

func CreateEvent(s *services.EventService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		var input models.CreateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		event, err := s.CreateEvent(c.Request.Context(), claims, input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), eventsCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(event, "Event created successfully"))
	}
}

// ListEvents serves both /events and /events/type/:type; the type
// parameter is empty on the unfiltered route.
func ListEvents(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		events, total, err := s.ListEvents(c.Request.Context(), c.Param("type"), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events, page, limit, total))
	}
}

func GetEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := s.GetEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func UpdateEvent(s *services.EventService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		var input models.UpdateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		event, err := s.UpdateEvent(c.Request.Context(), claims, c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), eventsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event updated successfully"))
	}
}

func DeleteEvent(s *services.EventService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		if err := s.DeleteEvent(c.Request.Context(), claims, c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), eventsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event deleted successfully"))
	}
}
