// Package queue defines message payloads exchanged over the message broker.
package queue

// InquiryCreatedEvent is published when a contact-form submission is stored.
// It carries enough information for downstream consumers (sales
// notification, analytics) without querying the primary database.
type InquiryCreatedEvent struct {
	IDContactForm int64  `json:"idContactForm"`
	IDVehicle     int64  `json:"idVehicle"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	SubmittedAt   string `json:"submittedAt"`
}
