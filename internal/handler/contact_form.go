package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/drivelane/dealership/internal/model"
	"github.com/drivelane/dealership/internal/queue"
	"github.com/drivelane/dealership/internal/repository"
)

// contactFormBody is the request body for a contact-form submission.
type contactFormBody struct {
	IDVehicle int64  `json:"idVehicle" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Phone     string `json:"phone" validate:"required,max=50"`
	Message   string `json:"message" validate:"required,max=1000"`
}

// ContactFormResult is the data payload of a successful submission.
type ContactFormResult struct {
	IDContactForm int64 `json:"idContactForm"`
}

// CreateContactForm handles POST /external/contact-form.  The store verifies
// the vehicle exists and is available; a signalled "vehicleNotFound" is a
// 404, any other signalled rule violation a 400.  On success the handler
// responds 201 and publishes an inquiry event best-effort.
func (h *ExternalHandler) CreateContactForm(c echo.Context) error {
	var body contactFormBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest,
			errorResponse("Invalid request body", CodeValidationError, nil))
	}
	if err := h.validate.Struct(body); err != nil {
		return c.JSON(http.StatusBadRequest,
			errorResponse("Validation failed", CodeValidationError, fieldErrors(err)))
	}

	form := model.ContactForm{
		IDVehicle: body.IDVehicle,
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Message:   body.Message,
	}
	id, err := h.Contacts.Create(c.Request().Context(), form)
	if err != nil {
		var bre *repository.BusinessRuleError
		switch {
		case errors.Is(err, repository.ErrVehicleNotFound):
			return c.JSON(http.StatusNotFound,
				errorResponse(err.Error(), CodeNotFound, nil))
		case errors.As(err, &bre):
			return c.JSON(http.StatusBadRequest,
				errorResponse(bre.Message, CodeBusinessRuleError, nil))
		}
		return err
	}

	if h.PublishInquiry != nil {
		ev := queue.InquiryCreatedEvent{
			IDContactForm: id,
			IDVehicle:     form.IDVehicle,
			Name:          form.Name,
			Email:         form.Email,
			Phone:         form.Phone,
			SubmittedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.PublishInquiry(c.Request().Context(), ev); err != nil {
			log.WithError(err).WithField("contact_form_id", id).
				Warn("inquiry event publish failed")
		}
	}

	return c.JSON(http.StatusCreated,
		successResponse(ContactFormResult{IDContactForm: id}, nil))
}
