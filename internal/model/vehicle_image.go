package model

import "time"

// VehicleImage is one gallery image attached to a vehicle.  Display order
// is (IsPrimary descending, DisplayOrder ascending); ordering is applied by
// the consuming UI, not here.
type VehicleImage struct {
	IDVehicleImage int64     `json:"idVehicleImage"`
	IDVehicle      int64     `json:"idVehicle"`
	ImageURL       string    `json:"imageUrl"`
	IsPrimary      bool      `json:"isPrimary"`
	DisplayOrder   int       `json:"displayOrder"`
	DateCreated    time.Time `json:"dateCreated"`
}
