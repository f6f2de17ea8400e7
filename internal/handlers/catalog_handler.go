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
	packagesCacheEntity    = "packages"
	menuItemsCacheEntity   = "menu_items"
	rentalItemsCacheEntity = "rental_items"
)

func CreatePackage(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreatePackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		pkg, err := s.CreatePackage(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), packagesCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(pkg, "Package created successfully"))
	}
}

func ListPackages(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		packages, total, err := s.ListPackages(c.Request.Context(), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(packages, page, limit, total))
	}
}

func GetPackage(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pkg, err := s.GetPackage(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(pkg, ""))
	}
}

func UpdatePackage(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdatePackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		pkg, err := s.UpdatePackage(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), packagesCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(pkg, "Package updated successfully"))
	}
}

func DeletePackage(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), packagesCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Package deleted successfully"))
	}
}

func CreateMenuItem(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		item, err := s.CreateMenuItem(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), menuItemsCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(item, "Menu item created successfully"))
	}
}

// ListMenuItems serves both /menu-items and /menu-items/category/:category.
func ListMenuItems(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		items, total, err := s.ListMenuItems(c.Request.Context(), c.Param("category"), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(items, page, limit, total))
	}
}

func GetMenuItem(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := s.GetMenuItem(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(item, ""))
	}
}

func UpdateMenuItem(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		item, err := s.UpdateMenuItem(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), menuItemsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(item, "Menu item updated successfully"))
	}
}

func DeleteMenuItem(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), menuItemsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Menu item deleted successfully"))
	}
}

func CreateRentalItem(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateRentalItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		item, err := s.CreateRentalItem(c.Request.Context(), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), rentalItemsCacheEntity)
		c.JSON(http.StatusCreated, models.SuccessResponse(item, "Rental item created successfully"))
	}
}

// ListRentalItems serves both /rental-items and /rental-items/category/:category.
func ListRentalItems(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		items, total, err := s.ListRentalItems(c.Request.Context(), c.Param("category"), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(items, page, limit, total))
	}
}

func GetRentalItem(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := s.GetRentalItem(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(item, ""))
	}
}

func UpdateRentalItem(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UpdateRentalItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		item, err := s.UpdateRentalItem(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), rentalItemsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(item, "Rental item updated successfully"))
	}
}

func DeleteRentalItem(s *services.CatalogService, cache *middleware.CacheStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteRentalItem(c.Request.Context(), c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		cache.Invalidate(c.Request.Context(), rentalItemsCacheEntity)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Rental item deleted successfully"))
	}
}
