package model

// ContactForm is a customer inquiry about a specific vehicle.  Submissions
// are write-once: the store assigns the identifier on creation and there is
// no update or delete path.
//
// Fields:
//
//	IDVehicle – vehicle the inquiry is about.
//	Name      – customer name (max 200 characters).
//	Email     – customer email address (max 200 characters).
//	Phone     – customer phone number (max 50 characters).
//	Message   – inquiry message (max 1000 characters).
type ContactForm struct {
	IDVehicle int64  `json:"idVehicle"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}
