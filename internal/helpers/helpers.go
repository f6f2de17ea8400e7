package helpers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventara/server/internal/models"
	"github.com/eventara/server/internal/validation"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// WriteError translates a service error into an HTTP response. The
// validation layer tags failures with an explicit kind, so no message
// text is ever inspected here.
func WriteError(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		var payload interface{} = verr.Messages
		if len(verr.Messages) == 1 {
			payload = verr.Messages[0]
		}
		c.JSON(statusForKind(verr.Kind), models.ErrorResponse(payload))
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, models.ErrorResponse("resource not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse("internal server error"))
}

func statusForKind(kind validation.Kind) int {
	switch kind {
	case validation.KindNotFound:
		return http.StatusNotFound
	case validation.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// ParseObjectID normalizes and parses a path id. Clients occasionally
// send ids wrapped in quotes when templating, so those are stripped.
func ParseObjectID(raw string) (primitive.ObjectID, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "\"'")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// ParsePagination reads limit/offset query parameters with the
// defaults every list endpoint shares. Returns false after writing the
// error response when either value is malformed.
func ParsePagination(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}
