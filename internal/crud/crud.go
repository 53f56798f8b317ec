// Package crud carries the pieces every management screen shares:
// required-field validation, case-insensitive search, id generation and
// the translation of controller errors into HTTP errors.
package crud

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"multibranch-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

const MsgRequiredFields = "Please fill in all required fields"

var (
	ErrValidation           = errors.New("validation failed")
	ErrConfirmationRequired = errors.New("delete must be confirmed")
	ErrUnknownMetric        = errors.New("unknown metric view")
	ErrNotFound             = store.ErrNotFound
)

// ValidationError is a user-visible rejection. It matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Required rejects when any value is blank.
func Required(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return &ValidationError{Message: MsgRequiredFields}
		}
	}
	return nil
}

func Date(field, value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return Invalid("%s must be a date in YYYY-MM-DD format", field)
	}
	return nil
}

// Matches reports whether search occurs in any of fields, ignoring case.
// An empty search matches everything.
func Matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	fold := cases.Fold() // a Caser is stateful, so one per call
	needle := fold.String(search)
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the records whose search fields match. It never touches the
// input slice.
func Filter[T any](items []T, search string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(search, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}

func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Confirmed reads the explicit confirmation a delete needs.
func Confirmed(c *fiber.Ctx) error {
	if c.QueryBool("confirm", false) {
		return nil
	}
	return ErrConfirmationRequired
}

// HTTPError maps controller errors onto fiber errors for the central error
// handler. notFound is the entity-specific 404 message.
func HTTPError(err error, notFound string) error {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return fiber.NewError(fiber.StatusBadRequest, ve.Message)
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFound)
	case errors.Is(err, ErrConfirmationRequired):
		return fiber.NewError(fiber.StatusPreconditionRequired, "Deletion must be confirmed with confirm=true")
	case errors.Is(err, ErrUnknownMetric):
		return fiber.NewError(fiber.StatusBadRequest, "Unknown metric view")
	default:
		log.Errorf("Unexpected controller error: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Storage is unavailable")
	}
}

// Plural renders "1 branch" or "3 branches".
func Plural(n int, one, many string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + one
	}
	return strconv.Itoa(n) + " " + many
}
