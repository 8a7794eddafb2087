package handler

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/drivelane/dealership/internal/queue"
	"github.com/drivelane/dealership/internal/repository"
)

// ExternalHandler aggregates the stores needed by the public API.  It holds
// no per-request state; the shared connection pool behind the stores is
// owned by the process.
type ExternalHandler struct {
	Vehicles repository.VehicleStore
	Contacts repository.ContactFormStore

	// PublishInquiry is called after a successful contact-form creation.
	// Best effort: failures are logged, never surfaced to the caller.
	// Nil disables publishing.
	PublishInquiry func(ctx context.Context, ev queue.InquiryCreatedEvent) error

	validate *validator.Validate
}

// NewExternalHandler constructs an ExternalHandler and panics if a store is
// missing.  Validation error fields are reported under their JSON names.
func NewExternalHandler(vehicles repository.VehicleStore, contacts repository.ContactFormStore) *ExternalHandler {
	if vehicles == nil || contacts == nil {
		panic("nil store passed to NewExternalHandler")
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ExternalHandler{Vehicles: vehicles, Contacts: contacts, validate: v}
}

// fieldErrors converts validator failures into the envelope's field-error
// list.
func fieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field:   e.Field(),
			Message: "failed on the '" + e.Tag() + "' rule",
		})
	}
	return out
}

// HTTPErrorHandler is the centralized fallback for everything the endpoint
// handlers do not classify.  Echo's own errors (unknown route, method not
// allowed) keep their status; anything else is a 500.  Internal detail is
// logged, never exposed to the caller.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		code := CodeInternalError
		if he.Code == http.StatusNotFound {
			code = CodeNotFound
		}
		_ = c.JSON(he.Code, errorResponse(msg, code, nil))
		return
	}
	log.WithFields(log.Fields{
		"method": c.Request().Method,
		"path":   c.Request().URL.Path,
	}).WithError(err).Error("unhandled error")
	_ = c.JSON(http.StatusInternalServerError,
		errorResponse("internal server error", CodeInternalError, nil))
}
