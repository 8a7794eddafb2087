package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drivelane/dealership/internal/model"
	"github.com/drivelane/dealership/internal/repository"
)

// mockVehicleStore is a testify mock implementing repository.VehicleStore.
type mockVehicleStore struct {
	mock.Mock
}

func (m *mockVehicleStore) List(ctx context.Context, p repository.VehicleListParams) ([]model.VehicleListItem, int, error) {
	args := m.Called(ctx, p)
	var items []model.VehicleListItem
	if v := args.Get(0); v != nil {
		items = v.([]model.VehicleListItem)
	}
	return items, args.Int(1), args.Error(2)
}

func (m *mockVehicleStore) Get(ctx context.Context, idVehicle int64) (*model.VehicleDetail, []model.VehicleImage, error) {
	args := m.Called(ctx, idVehicle)
	var detail *model.VehicleDetail
	if v := args.Get(0); v != nil {
		detail = v.(*model.VehicleDetail)
	}
	var images []model.VehicleImage
	if v := args.Get(1); v != nil {
		images = v.([]model.VehicleImage)
	}
	return detail, images, args.Error(2)
}

// mockContactStore is a testify mock implementing repository.ContactFormStore.
type mockContactStore struct {
	mock.Mock
}

func (m *mockContactStore) Create(ctx context.Context, f model.ContactForm) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func setupExternal() (*echo.Echo, *ExternalHandler, *mockVehicleStore, *mockContactStore) {
	vehicles := new(mockVehicleStore)
	contacts := new(mockContactStore)
	h := NewExternalHandler(vehicles, contacts)

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.GET("/external/vehicle", h.ListVehicles)
	e.GET("/external/vehicle/:id", h.GetVehicle)
	e.POST("/external/contact-form", h.CreateContactForm)
	return e, h, vehicles, contacts
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func listItems(n int) []model.VehicleListItem {
	items := make([]model.VehicleListItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, model.VehicleListItem{
			IDVehicle: int64(i + 1), Model: "Corolla", Year: 2021,
			Price: 24990, Mileage: 30500, Description: "well kept",
			IDBrand: 1, BrandName: "Toyota",
			IDFuelType: 2, FuelTypeName: "Hybrid",
			IDTransmission: 1, TransmissionName: "Automatic",
			IDColor: 3, ColorName: "Silver",
		})
	}
	return items
}

func TestListVehicles_FiltersAndPagination(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	vehicles.On("List", mock.Anything, mock.MatchedBy(func(p repository.VehicleListParams) bool {
		return p.YearMin != nil && *p.YearMin == 2020 &&
			p.PriceMax != nil && *p.PriceMax == 50000 &&
			p.IDBrand == nil && p.Page == 1 && p.PageSize == 20
	})).Return(listItems(5), 5, nil)

	rec := doRequest(e, http.MethodGet, "/external/vehicle?yearMin=2020&priceMax=50000&page=1&pageSize=20", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env["success"])

	data := env["data"].(map[string]any)
	assert.Equal(t, float64(5), data["total"])
	assert.Equal(t, float64(1), data["totalPages"])
	assert.Len(t, data["vehicles"].([]any), 5)

	meta := env["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(20), meta["pageSize"])
	assert.Equal(t, float64(5), meta["total"])
	vehicles.AssertExpectations(t)
}

func TestListVehicles_TotalPagesCeiling(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	vehicles.On("List", mock.Anything, mock.Anything).Return(listItems(20), 45, nil)

	rec := doRequest(e, http.MethodGet, "/external/vehicle?pageSize=20", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(45), data["total"])
	assert.Equal(t, float64(3), data["totalPages"])
}

func TestListVehicles_DefaultsApplied(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	vehicles.On("List", mock.Anything, mock.MatchedBy(func(p repository.VehicleListParams) bool {
		return p.Page == 1 && p.PageSize == 20 && !p.FeaturedOnly && p.SortBy == "" && p.SortOrder == ""
	})).Return([]model.VehicleListItem{}, 0, nil)

	rec := doRequest(e, http.MethodGet, "/external/vehicle", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(0), data["total"])
	assert.Equal(t, float64(0), data["totalPages"])
	assert.Equal(t, float64(1), data["page"])
	assert.Equal(t, float64(20), data["pageSize"])
	vehicles.AssertExpectations(t)
}

func TestListVehicles_FeaturedOnlyCoercion(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	// "1" and "true" are truthy, anything else (including "false") is falsy.
	vehicles.On("List", mock.Anything, mock.MatchedBy(func(p repository.VehicleListParams) bool {
		return p.FeaturedOnly
	})).Return([]model.VehicleListItem{}, 0, nil).Twice()
	vehicles.On("List", mock.Anything, mock.MatchedBy(func(p repository.VehicleListParams) bool {
		return !p.FeaturedOnly
	})).Return([]model.VehicleListItem{}, 0, nil).Once()

	for _, q := range []string{"featuredOnly=1", "featuredOnly=true", "featuredOnly=false"} {
		rec := doRequest(e, http.MethodGet, "/external/vehicle?"+q, "")
		assert.Equal(t, http.StatusOK, rec.Code, q)
	}
	vehicles.AssertExpectations(t)
}

func TestListVehicles_UnsupportedSortBy(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	rec := doRequest(e, http.MethodGet, "/external/vehicle?sortBy=color", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "VALIDATION_ERROR", env["code"])
	vehicles.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListVehicles_OutOfRangeAndNonNumeric(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	for _, q := range []string{
		"yearMin=1800",
		"pageSize=500",
		"page=0",
		"priceMin=-10",
		"idBrand=abc",
		"sortOrder=sideways",
	} {
		rec := doRequest(e, http.MethodGet, "/external/vehicle?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec)["code"], q)
	}
	vehicles.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListVehicles_StoreBusinessRule(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	vehicles.On("List", mock.Anything, mock.Anything).
		Return(nil, 0, &repository.BusinessRuleError{Message: "invalidPriceRange"})

	rec := doRequest(e, http.MethodGet, "/external/vehicle", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "BUSINESS_RULE_ERROR", env["code"])
	assert.Equal(t, "invalidPriceRange", env["error"])
}

func TestListVehicles_UnclassifiedErrorIs500(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	vehicles.On("List", mock.Anything, mock.Anything).
		Return(nil, 0, assert.AnError)

	rec := doRequest(e, http.MethodGet, "/external/vehicle", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, false, env["success"])
	// internal detail must not leak
	assert.Equal(t, "internal server error", env["error"])
}

func TestGetVehicle_OK(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	detail := &model.VehicleDetail{
		IDVehicle: 42, Model: "Civic", Year: 2022, Price: 27990, Mileage: 12000,
		IDBrand: 2, BrandName: "Honda", BrandCode: "HON",
		IDFuelType: 1, FuelTypeName: "Gasoline", FuelTypeCode: "GAS",
		IDTransmission: 2, TransmissionName: "Manual", TransmissionCode: "MT",
		IDColor: 1, ColorName: "Red", ColorCode: "RED",
		DateCreated: time.Now().UTC(), DateModified: time.Now().UTC(),
	}
	images := []model.VehicleImage{
		{IDVehicleImage: 1, IDVehicle: 42, ImageURL: "https://img/1.jpg", IsPrimary: true},
		{IDVehicleImage: 2, IDVehicle: 42, ImageURL: "https://img/2.jpg", DisplayOrder: 1},
	}
	vehicles.On("Get", mock.Anything, int64(42)).Return(detail, images, nil)

	rec := doRequest(e, http.MethodGet, "/external/vehicle/42", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	vehicle := data["vehicle"].(map[string]any)
	assert.Equal(t, float64(42), vehicle["idVehicle"])
	assert.Equal(t, "HON", vehicle["brandCode"])
	assert.Len(t, data["images"].([]any), 2)
}

func TestGetVehicle_NotFound(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	vehicles.On("Get", mock.Anything, int64(999999)).
		Return(nil, nil, repository.ErrVehicleNotFound)

	rec := doRequest(e, http.MethodGet, "/external/vehicle/999999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "NOT_FOUND", env["code"])
	assert.Equal(t, "vehicleNotFound", env["error"])
}

func TestGetVehicle_InvalidID(t *testing.T) {
	e, _, vehicles, _ := setupExternal()

	for _, id := range []string{"abc", "-1", "0"} {
		rec := doRequest(e, http.MethodGet, "/external/vehicle/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec)["code"], id)
	}
	vehicles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
