package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Kind classifies a validation failure so callers can map it to a
// transport status without inspecting message text.
type Kind int

const (
	KindBadRequest Kind = iota
	KindNotFound
	KindForbidden
)

// Error is the structured failure returned by every validation tier.
// Messages are ordered the way the rules were evaluated.
type Error struct {
	Kind     Kind
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func BadRequest(messages ...string) *Error {
	return &Error{Kind: KindBadRequest, Messages: messages}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Messages: []string{message}}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Messages: []string{message}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json field names in messages instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct runs the declarative field tier against a create or update
// payload. Update payloads use pointer fields with omitempty so absent
// fields are skipped; present fields are held to the same bounds as on
// create.
func Struct(payload any) *Error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return BadRequest(err.Error())
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return BadRequest(messages...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s digits", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "startswith":
		return fmt.Sprintf("%s must start with %q", fe.Field(), fe.Param())
	case "datetime":
		if fe.Param() == "2006-01-02" {
			return fmt.Sprintf("%s must be in YYYY-MM-DD format", fe.Field())
		}
		return fmt.Sprintf("%s must be in HH:MM format", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// MinMax checks an ordered pair. The label names the pair in the
// message, e.g. MinMax("capacity", 20, 50).
func MinMax(label string, min, max int) *Error {
	if max < min {
		return BadRequest(fmt.Sprintf("Maximum %s must be greater than or equal to minimum %s", label, label))
	}
	return nil
}

// EventDateNotPast rejects event dates before the current day. Both
// values are truncated to their calendar date so an event later today
// is still accepted.
func EventDateNotPast(date, now time.Time) *Error {
	day := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if day(date).Before(day(now)) {
		return BadRequest("Event date cannot be in the past")
	}
	return nil
}

// TimeOrdered checks that end is after start. Times are "HH:MM"
// 24-hour strings, so lexicographic order is chronological order.
func TimeOrdered(start, end string) *Error {
	if end <= start {
		return BadRequest("End time must be after start time")
	}
	return nil
}

// DateRangeOrdered checks a "YYYY-MM-DD" range; end may equal start.
func DateRangeOrdered(start, end string) *Error {
	if end < start {
		return BadRequest("End date must be on or after start date")
	}
	return nil
}

// RatingInRange enforces the 1..5 review rating bound.
func RatingInRange(rating int) *Error {
	if rating < 1 || rating > 5 {
		return BadRequest("Rating must be between 1 and 5")
	}
	return nil
}

// MeanRating returns the arithmetic mean of the ratings rounded to one
// decimal, or 0 when there are none. Derived rating fields are always
// the output of this function, never client input.
func MeanRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return Round1(float64(sum) / float64(len(ratings)))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
