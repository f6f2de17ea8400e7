package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

const (
	photographersCacheEntity = "photographers"
	musicalGroupsCacheEntity = "musical_groups"
	staffCacheEntity         = "staff"
)

func CreatePhotographer(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreatePhotographerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		photographer, err := s.CreatePhotographer(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), photographersCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(photographer, "Photographer created successfully"))
	}
}

func ListPhotographers(s *services.VendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		photographers, total, err := s.ListPhotographers(c.Request.Context(), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(photographers, page, limit, total))
	}
}

func GetPhotographer(s *services.VendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		photographer, err := s.GetPhotographer(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(photographer, ""))
	}
}

func UpdatePhotographer(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdatePhotographerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		photographer, err := s.UpdatePhotographer(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), photographersCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(photographer, "Photographer updated successfully"))
	}
}

func DeletePhotographer(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeletePhotographer(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), photographersCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Photographer deleted successfully"))
	}
}

func CreateMusicalGroup(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateMusicalGroupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		group, err := s.CreateMusicalGroup(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), musicalGroupsCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(group, "Musical group created successfully"))
	}
}

func ListMusicalGroups(s *services.VendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		groups, total, err := s.ListMusicalGroups(c.Request.Context(), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(groups, page, limit, total))
	}
}

func GetMusicalGroup(s *services.VendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		group, err := s.GetMusicalGroup(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(group, ""))
	}
}

func UpdateMusicalGroup(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateMusicalGroupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		group, err := s.UpdateMusicalGroup(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), musicalGroupsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(group, "Musical group updated successfully"))
	}
}

func DeleteMusicalGroup(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteMusicalGroup(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), musicalGroupsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Musical group deleted successfully"))
	}
}

func CreateStaff(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateStaffInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		staff, err := s.CreateStaff(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), staffCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(staff, "Staff member created successfully"))
	}
}

// ListStaff serves both /staff and /staff/position/:position.
func ListStaff(s *services.VendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		staff, total, err := s.ListStaff(c.Request.Context(), c.Param("position"), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(staff, page, limit, total))
	}
}

func GetStaff(s *services.VendorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := s.GetStaff(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(staff, ""))
	}
}

func UpdateStaff(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateStaffInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		staff, err := s.UpdateStaff(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), staffCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(staff, "Staff member updated successfully"))
	}
}

func DeleteStaff(s *services.VendorService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), staffCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Staff member deleted successfully"))
	}
}
