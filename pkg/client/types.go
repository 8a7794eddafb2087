package client

import "time"

// VehicleListItem is one row of a catalog listing.
type VehicleListItem struct {
	IDVehicle        int64    `json:"idVehicle"`
	Model            string   `json:"model"`
	Year             int      `json:"year"`
	Price            float64  `json:"price"`
	Mileage          int      `json:"mileage"`
	Description      string   `json:"description"`
	EngineSize       *float64 `json:"engineSize"`
	Doors            *int     `json:"doors"`
	Featured         bool     `json:"featured"`
	IDBrand          int64    `json:"idBrand"`
	BrandName        string   `json:"brandName"`
	IDFuelType       int64    `json:"idFuelType"`
	FuelTypeName     string   `json:"fuelTypeName"`
	IDTransmission   int64    `json:"idTransmission"`
	TransmissionName string   `json:"transmissionName"`
	IDColor          int64    `json:"idColor"`
	ColorName        string   `json:"colorName"`
	ColorHex         *string  `json:"colorHex"`
	PrimaryImageURL  *string  `json:"primaryImageUrl"`
}

// VehicleDetail is the full vehicle record returned by the detail endpoint.
type VehicleDetail struct {
	IDVehicle        int64     `json:"idVehicle"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Price            float64   `json:"price"`
	Mileage          int       `json:"mileage"`
	Description      string    `json:"description"`
	EngineSize       *float64  `json:"engineSize"`
	Doors            *int      `json:"doors"`
	Featured         bool      `json:"featured"`
	IDBrand          int64     `json:"idBrand"`
	BrandName        string    `json:"brandName"`
	BrandCode        string    `json:"brandCode"`
	IDFuelType       int64     `json:"idFuelType"`
	FuelTypeName     string    `json:"fuelTypeName"`
	FuelTypeCode     string    `json:"fuelTypeCode"`
	IDTransmission   int64     `json:"idTransmission"`
	TransmissionName string    `json:"transmissionName"`
	TransmissionCode string    `json:"transmissionCode"`
	IDColor          int64     `json:"idColor"`
	ColorName        string    `json:"colorName"`
	ColorCode        string    `json:"colorCode"`
	ColorHex         *string   `json:"colorHex"`
	DateCreated      time.Time `json:"dateCreated"`
	DateModified     time.Time `json:"dateModified"`
}

// VehicleImage is one gallery image.  For display, sort by IsPrimary
// descending then DisplayOrder ascending.
type VehicleImage struct {
	IDVehicleImage int64     `json:"idVehicleImage"`
	IDVehicle      int64     `json:"idVehicle"`
	ImageURL       string    `json:"imageUrl"`
	IsPrimary      bool      `json:"isPrimary"`
	DisplayOrder   int       `json:"displayOrder"`
	DateCreated    time.Time `json:"dateCreated"`
}

// ListParams are the optional filters for ListVehicles.  Zero-valued
// pointers are omitted from the query string.
type ListParams struct {
	IDBrand        *int64
	IDFuelType     *int64
	IDTransmission *int64
	IDColor        *int64
	YearMin        *int
	YearMax        *int
	PriceMin       *float64
	PriceMax       *float64
	FeaturedOnly   bool
	SortBy         string // price, year, model, dateCreated, mileage
	SortOrder      string // ASC, DESC
	Page           int
	PageSize       int
}

// VehicleListResult is the payload of a successful listing call.
type VehicleListResult struct {
	Vehicles   []VehicleListItem `json:"vehicles"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// VehicleDetailResult is the payload of a successful detail call.
type VehicleDetailResult struct {
	Vehicle VehicleDetail  `json:"vehicle"`
	Images  []VehicleImage `json:"images"`
}

// ContactFormRequest is a vehicle inquiry submission.
type ContactFormRequest struct {
	IDVehicle int64  `json:"idVehicle"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}
