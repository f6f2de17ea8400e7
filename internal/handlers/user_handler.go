package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/middleware"
	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/services"
)

func RegisterUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}

		// Registration is open; claims are present only when an admin
		// creates an account on someone's behalf.
		var caller *helpers.Claims
		if claims, ok := middleware.CurrentUser(c); ok {
			caller = &claims
		}

		user, err := s.Register(c.Request.Context(), caller, input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(user, "User registered successfully"))
	}
}

func GetProfile(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		user, err := s.GetUser(c.Request.Context(), claims.UserID())
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

func GetUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.GetUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

func ListUsers(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := helpers.ParsePagination(c)
		if !ok {
			return
		}
		users, total, err := s.ListUsers(c.Request.Context(), offset, limit)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		page := (offset / limit) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(users, page, limit, total))
	}
}

func UpdateUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		var input models.UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid JSON payload"))
			return
		}
		user, err := s.UpdateUser(c.Request.Context(), claims, c.Param("id"), input)
		if err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "User updated successfully"))
	}
}

func DeleteUser(s *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		if err := s.DeleteUser(c.Request.Context(), claims, c.Param("id")); err != nil {
			helpers.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "User deleted successfully"))
	}
}
