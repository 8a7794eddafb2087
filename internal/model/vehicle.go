package model

import "time"

// VehicleListItem is the list projection of a vehicle as returned by the
// catalog list procedure.  One row per matching vehicle, reference data
// (brand, fuel type, transmission, color) already joined in by the store.
//
// Fields:
//
//	IDVehicle       – primary key identifier.
//	Model           – vehicle model name.
//	Year            – manufacturing year.
//	Price           – asking price; never negative.
//	Mileage         – mileage in kilometers; never negative.
//	Description     – free-text description.
//	EngineSize      – engine size in liters (nullable).
//	Doors           – number of doors (nullable).
//	Featured        – featured vehicle flag.
//	PrimaryImageURL – URL of the primary image, if one exists.
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

// VehicleDetail is the detail projection: the list projection plus the
// reference-data codes and row timestamps.  The detail procedure returns at
// most one row; zero rows means the vehicle does not exist or is not
// available, never an empty success.
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
