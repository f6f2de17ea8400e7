package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventara/server/internal/validation"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-longer", hash)

	assert.True(t, CheckPassword(hash, "hunter2-but-longer"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, ok := ParseObjectID(id.Hex())
	assert.True(t, ok)
	assert.Equal(t, id, parsed)

	// Quoted and padded ids still parse.
	parsed, ok = ParseObjectID("\"" + id.Hex() + "\"")
	assert.True(t, ok)
	assert.Equal(t, id, parsed)

	_, ok = ParseObjectID("not-hex")
	assert.False(t, ok)

	_, ok = ParseObjectID("")
	assert.False(t, ok)
}

func writeErrorStatus(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestWriteErrorKindMapping(t *testing.T) {
	status, body := writeErrorStatus(t, validation.BadRequest("title is required"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "title is required", body["error"])

	status, _ = writeErrorStatus(t, validation.NotFound("venue not found"))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = writeErrorStatus(t, validation.Forbidden("nope"))
	assert.Equal(t, http.StatusForbidden, status)
}

func TestWriteErrorMultipleMessages(t *testing.T) {
	status, body := writeErrorStatus(t, validation.BadRequest("title is required", "location is required"))
	assert.Equal(t, http.StatusBadRequest, status)

	msgs, ok := body["error"].([]interface{})
	require.True(t, ok)
	assert.Len(t, msgs, 2)
}

func TestWriteErrorFallbacks(t *testing.T) {
	status, _ := writeErrorStatus(t, mongo.ErrNoDocuments)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := writeErrorStatus(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body["error"])
}
