// Package client is a typed Go client for the dealership API.  It mirrors
// each endpoint as one call, unwraps the response envelope, and surfaces
// failure envelopes as *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a failure envelope returned by the service: a validation
// rejection, a missing vehicle, or a business-rule violation.
type APIError struct {
	StatusCode int
	Code       string // VALIDATION_ERROR, NOT_FOUND, BUSINESS_RULE_ERROR, ...
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// envelope mirrors the server's response wrapper with the payload kept raw
// until the caller's type is known.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

// Client talks to one dealership API instance.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New constructs a Client for the given base URL ("https://host[:port]",
// no trailing slash required).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// ListVehicles calls GET /external/vehicle with the given filters.
func (c *Client) ListVehicles(ctx context.Context, p ListParams) (*VehicleListResult, error) {
	q := url.Values{}
	setInt64 := func(name string, v *int64) {
		if v != nil {
			q.Set(name, strconv.FormatInt(*v, 10))
		}
	}
	setInt := func(name string, v *int) {
		if v != nil {
			q.Set(name, strconv.Itoa(*v))
		}
	}
	setInt64("idBrand", p.IDBrand)
	setInt64("idFuelType", p.IDFuelType)
	setInt64("idTransmission", p.IDTransmission)
	setInt64("idColor", p.IDColor)
	setInt("yearMin", p.YearMin)
	setInt("yearMax", p.YearMax)
	if p.PriceMin != nil {
		q.Set("priceMin", strconv.FormatFloat(*p.PriceMin, 'f', -1, 64))
	}
	if p.PriceMax != nil {
		q.Set("priceMax", strconv.FormatFloat(*p.PriceMax, 'f', -1, 64))
	}
	if p.FeaturedOnly {
		q.Set("featuredOnly", "true")
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}

	path := "/external/vehicle"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var out VehicleListResult
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetVehicle calls GET /external/vehicle/:id.
func (c *Client) GetVehicle(ctx context.Context, idVehicle int64) (*VehicleDetailResult, error) {
	var out VehicleDetailResult
	path := fmt.Sprintf("/external/vehicle/%d", idVehicle)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateContactForm calls POST /external/contact-form and returns the
// assigned contact-form identifier.
func (c *Client) CreateContactForm(ctx context.Context, form ContactFormRequest) (int64, error) {
	var out struct {
		IDContactForm int64 `json:"idContactForm"`
	}
	if err := c.do(ctx, http.MethodPost, "/external/contact-form", form, &out); err != nil {
		return 0, err
	}
	return out.IDContactForm, nil
}

// do performs one request, decodes the envelope and unmarshals data into
// out.  A failure envelope becomes *APIError; transport and decode problems
// are returned as plain errors.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Error}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}
