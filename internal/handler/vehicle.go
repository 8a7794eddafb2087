package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/drivelane/dealership/internal/model"
	"github.com/drivelane/dealership/internal/repository"
)

// vehicleListQuery mirrors the accepted list filters after coercion from the
// query string.  Nil means the filter was not supplied.  Bounds live in the
// validate tags; coercion failures are reported before validation runs.
type vehicleListQuery struct {
	IDBrand        *int64   `json:"idBrand" validate:"omitempty,gt=0"`
	IDFuelType     *int64   `json:"idFuelType" validate:"omitempty,gt=0"`
	IDTransmission *int64   `json:"idTransmission" validate:"omitempty,gt=0"`
	IDColor        *int64   `json:"idColor" validate:"omitempty,gt=0"`
	YearMin        *int     `json:"yearMin" validate:"omitempty,gte=1900,lte=2100"`
	YearMax        *int     `json:"yearMax" validate:"omitempty,gte=1900,lte=2100"`
	PriceMin       *float64 `json:"priceMin" validate:"omitempty,gte=0"`
	PriceMax       *float64 `json:"priceMax" validate:"omitempty,gte=0"`
	FeaturedOnly   bool     `json:"featuredOnly"`
	SortBy         string   `json:"sortBy" validate:"omitempty,oneof=price year model dateCreated mileage"`
	SortOrder      string   `json:"sortOrder" validate:"omitempty,oneof=ASC DESC"`
	Page           *int     `json:"page" validate:"omitempty,gte=1"`
	PageSize       *int     `json:"pageSize" validate:"omitempty,gte=1,lte=100"`
}

// VehicleListResult is the data payload of the list endpoint.
type VehicleListResult struct {
	Vehicles   []model.VehicleListItem `json:"vehicles"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"pageSize"`
	TotalPages int                     `json:"totalPages"`
}

// VehicleDetailResult is the data payload of the detail endpoint.
type VehicleDetailResult struct {
	Vehicle *model.VehicleDetail `json:"vehicle"`
	Images  []model.VehicleImage `json:"images"`
}

// ListVehicles handles GET /external/vehicle.  It validates the filters,
// invokes the list procedure and shapes the paginated response.  A domain
// failure signalled by the store maps to 400; nothing on this endpoint is a
// 404, an empty page is a valid success.
func (h *ExternalHandler) ListVehicles(c echo.Context) error {
	var ferrs []FieldError
	q := vehicleListQuery{
		IDBrand:        queryInt64(c, "idBrand", &ferrs),
		IDFuelType:     queryInt64(c, "idFuelType", &ferrs),
		IDTransmission: queryInt64(c, "idTransmission", &ferrs),
		IDColor:        queryInt64(c, "idColor", &ferrs),
		YearMin:        queryInt(c, "yearMin", &ferrs),
		YearMax:        queryInt(c, "yearMax", &ferrs),
		PriceMin:       queryFloat(c, "priceMin", &ferrs),
		PriceMax:       queryFloat(c, "priceMax", &ferrs),
		FeaturedOnly:   queryBoolish(c, "featuredOnly"),
		SortBy:         strings.TrimSpace(c.QueryParam("sortBy")),
		SortOrder:      strings.TrimSpace(c.QueryParam("sortOrder")),
		Page:           queryInt(c, "page", &ferrs),
		PageSize:       queryInt(c, "pageSize", &ferrs),
	}
	if len(ferrs) == 0 {
		if err := h.validate.Struct(q); err != nil {
			ferrs = fieldErrors(err)
		}
	}
	if len(ferrs) > 0 {
		return c.JSON(http.StatusBadRequest,
			errorResponse("Validation failed", CodeValidationError, ferrs))
	}

	page, pageSize := 1, 20
	if q.Page != nil {
		page = *q.Page
	}
	if q.PageSize != nil {
		pageSize = *q.PageSize
	}

	vehicles, total, err := h.Vehicles.List(c.Request().Context(), repository.VehicleListParams{
		IDBrand:        q.IDBrand,
		IDFuelType:     q.IDFuelType,
		IDTransmission: q.IDTransmission,
		IDColor:        q.IDColor,
		YearMin:        q.YearMin,
		YearMax:        q.YearMax,
		PriceMin:       q.PriceMin,
		PriceMax:       q.PriceMax,
		FeaturedOnly:   q.FeaturedOnly,
		SortBy:         q.SortBy,
		SortOrder:      q.SortOrder,
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		var bre *repository.BusinessRuleError
		switch {
		case errors.As(err, &bre):
			return c.JSON(http.StatusBadRequest,
				errorResponse(bre.Message, CodeBusinessRuleError, nil))
		case errors.Is(err, repository.ErrVehicleNotFound):
			// The list contract has no not-found case; a signalled 51000 here
			// is a domain-rule failure like any other.
			return c.JSON(http.StatusBadRequest,
				errorResponse(err.Error(), CodeBusinessRuleError, nil))
		}
		return err
	}

	totalPages := (total + pageSize - 1) / pageSize
	data := VehicleListResult{
		Vehicles:   vehicles,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
	return c.JSON(http.StatusOK,
		successResponse(data, &Meta{Page: page, PageSize: pageSize, Total: total}))
}

// GetVehicle handles GET /external/vehicle/:id.  A missing or unavailable
// vehicle is a 404, never an empty success payload.
func (h *ExternalHandler) GetVehicle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest,
			errorResponse("Invalid vehicle ID", CodeValidationError,
				[]FieldError{{Field: "id", Message: "must be a positive integer"}}))
	}

	vehicle, images, err := h.Vehicles.Get(c.Request().Context(), id)
	if err != nil {
		var bre *repository.BusinessRuleError
		switch {
		case errors.Is(err, repository.ErrVehicleNotFound):
			return c.JSON(http.StatusNotFound,
				errorResponse(err.Error(), CodeNotFound, nil))
		case errors.As(err, &bre):
			// The detail procedure signals every domain failure through the
			// same reserved number; the original contract reports them all
			// as not found.
			return c.JSON(http.StatusNotFound,
				errorResponse(bre.Message, CodeNotFound, nil))
		}
		return err
	}

	return c.JSON(http.StatusOK,
		successResponse(VehicleDetailResult{Vehicle: vehicle, Images: images}, nil))
}

// queryInt64 coerces an optional query parameter into an int64 pointer.
// Empty means unset; non-numeric text is recorded as a field error.
func queryInt64(c echo.Context, name string, errs *[]FieldError) *int64 {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		*errs = append(*errs, FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &n
}

func queryInt(c echo.Context, name string, errs *[]FieldError) *int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &n
}

func queryFloat(c echo.Context, name string, errs *[]FieldError) *float64 {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, FieldError{Field: name, Message: "must be a number"})
		return nil
	}
	return &f
}

// queryBoolish implements the lenient boolean coercion of the original
// contract: the strings "true" and "1" are truthy, any other value
// (including "false", "0" and garbage) is falsy, never an error.
func queryBoolish(c echo.Context, name string) bool {
	raw := strings.TrimSpace(c.QueryParam(name))
	return raw == "true" || raw == "1"
}
