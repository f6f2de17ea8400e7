package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

const decorationsCacheEntity = "decorations"

func CreateDecoration(s *services.DecorationService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateDecorationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		decoration, err := s.CreateDecoration(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), decorationsCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(decoration, "Decoration created successfully"))
	}
}

func ListDecorations(s *services.DecorationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		decorations, total, err := s.ListDecorations(c.Request.Context(), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(decorations, page, limit, total))
	}
}

func GetDecoration(s *services.DecorationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		decoration, err := s.GetDecoration(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(decoration, ""))
	}
}

func UpdateDecoration(s *services.DecorationService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateDecorationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		decoration, err := s.UpdateDecoration(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), decorationsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(decoration, "Decoration updated successfully"))
	}
}

func DeleteDecoration(s *services.DecorationService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteDecoration(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), decorationsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Decoration deleted successfully"))
	}
}

func AddDecorationReview(s *services.DecorationService, cache *middleware.CacheStore) gin.HandlerFunc {
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
		decoration, err := s.AddReview(c.Request.Context(), claims, c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), decorationsCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(decoration, "Review added successfully"))
	}
}
