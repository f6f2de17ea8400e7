package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	assert.Nil(t, MinMax("capacity", 20, 50))
	assert.Nil(t, MinMax("capacity", 50, 50))

	err := MinMax("capacity", 50, 20)
	require.NotNil(t, err)
	assert.Equal(t, KindBadRequest, err.Kind)
	assert.Equal(t, "Maximum capacity must be greater than or equal to minimum capacity", err.Messages[0])

	err = MinMax("guests", 100, 10)
	require.NotNil(t, err)
	assert.Equal(t, "Maximum guests must be greater than or equal to minimum guests", err.Messages[0])
}

func TestEventDateNotPast(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	yesterday := now.AddDate(0, 0, -1)
	err := EventDateNotPast(yesterday, now)
	require.NotNil(t, err)
	assert.Equal(t, "Event date cannot be in the past", err.Messages[0])

	// Later today is not "in the past" even though the hour already passed.
	earlierToday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	assert.Nil(t, EventDateNotPast(earlierToday, now))

	assert.Nil(t, EventDateNotPast(now.AddDate(0, 0, 7), now))
}

func TestTimeOrdered(t *testing.T) {
	assert.Nil(t, TimeOrdered("09:00", "17:00"))

	err := TimeOrdered("14:00", "13:00")
	require.NotNil(t, err)
	assert.Equal(t, "End time must be after start time", err.Messages[0])

	// Equal times are rejected too.
	require.NotNil(t, TimeOrdered("14:00", "14:00"))
}

func TestDateRangeOrdered(t *testing.T) {
	assert.Nil(t, DateRangeOrdered("2026-12-24", "2026-12-26"))
	assert.Nil(t, DateRangeOrdered("2026-12-24", "2026-12-24"))

	err := DateRangeOrdered("2026-12-26", "2026-12-24")
	require.NotNil(t, err)
	assert.Equal(t, KindBadRequest, err.Kind)
}

func TestRatingInRange(t *testing.T) {
	for r := 1; r <= 5; r++ {
		assert.Nil(t, RatingInRange(r))
	}
	require.NotNil(t, RatingInRange(0))
	require.NotNil(t, RatingInRange(6))
	assert.Equal(t, "Rating must be between 1 and 5", RatingInRange(0).Messages[0])
}

func TestMeanRating(t *testing.T) {
	assert.Equal(t, 0.0, MeanRating(nil))
	assert.Equal(t, 5.0, MeanRating([]int{5}))
	assert.Equal(t, 4.0, MeanRating([]int{5, 3}))
	assert.Equal(t, 4.3, MeanRating([]int{5, 4, 4}))
	assert.Equal(t, 3.7, MeanRating([]int{5, 4, 2}))
}

func TestStructCreatePayload(t *testing.T) {
	type createInput struct {
		Title string `json:"title" validate:"required,min=3"`
		Phone string `json:"phone" validate:"required,len=10,numeric"`
		Type  string `json:"type" validate:"required,oneof=wedding birthday"`
	}

	assert.Nil(t, Struct(createInput{Title: "Launch", Phone: "0241234567", Type: "wedding"}))

	err := Struct(createInput{Phone: "123", Type: "gala"})
	require.NotNil(t, err)
	assert.Equal(t, KindBadRequest, err.Kind)
	// Messages come back in rule-evaluation order with json field names.
	assert.Equal(t, []string{
		"title is required",
		"phone must be exactly 10 digits",
		"type must be one of: wedding, birthday",
	}, err.Messages)
}

func TestStructUpdatePayloadSkipsAbsentFields(t *testing.T) {
	type updateInput struct {
		Title *string `json:"title" validate:"omitempty,min=3"`
		Phone *string `json:"phone" validate:"omitempty,len=10,numeric"`
	}

	// Absent fields are not validated.
	assert.Nil(t, Struct(updateInput{}))

	// Present fields are held to the create-time bounds.
	bad := "12"
	err := Struct(updateInput{Phone: &bad})
	require.NotNil(t, err)
	assert.Equal(t, []string{"phone must be exactly 10 digits"}, err.Messages)
}
