package repository

import (
	"context"
	"database/sql"

	"github.com/drivelane/dealership/internal/model"
)

// ContactFormStore is the write side of the inquiry flow.  The store itself
// verifies that the referenced vehicle exists and is available, signalling
// failure through the reserved error-number convention rather than an empty
// result.
type ContactFormStore interface {
	Create(ctx context.Context, f model.ContactForm) (int64, error)
}

// ContactFormRepo invokes the contact-form stored procedure.
type ContactFormRepo struct {
	db *sql.DB
}

// NewContactFormRepo constructs a ContactFormRepo with the given DB handle.
func NewContactFormRepo(db *sql.DB) *ContactFormRepo {
	return &ContactFormRepo{db: db}
}

// Create calls sp_contact_form_create with the validated submission and
// returns the assigned contact-form identifier.  This is the only durable
// write the application performs.
func (r *ContactFormRepo) Create(ctx context.Context, f model.ContactForm) (int64, error) {
	const q = `CALL sp_contact_form_create(?, ?, ?, ?, ?)`
	var id int64
	err := r.db.QueryRowContext(ctx, q, f.IDVehicle, f.Name, f.Email, f.Phone, f.Message).Scan(&id)
	if err != nil {
		return 0, classifyStoreError(err)
	}
	return id, nil
}
