// Package repository contains the data access layer.  Business logic lives
// in MySQL stored procedures; this package invokes them and translates their
// error-signalling convention into Go errors.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// domainErrNumber is the reserved MySQL error number used by the dealership
// procedures to signal a domain-rule failure (SIGNAL SQLSTATE '45000' SET
// MYSQL_ERRNO = 51000).  The same number covers two distinct meanings,
// disambiguated only by the fixed message below.  This contract is shared
// with the store and must not be extended here.
const domainErrNumber = 51000

// vehicleNotFoundMsg is the exact message the store uses for a missing or
// unavailable vehicle.
const vehicleNotFoundMsg = "vehicleNotFound"

// ErrVehicleNotFound indicates that the requested vehicle does not exist or
// is not available.
var ErrVehicleNotFound = errors.New(vehicleNotFoundMsg)

// BusinessRuleError is a domain-rule violation raised inside the store, as
// opposed to a validation failure at the application boundary.  The message
// comes from the procedure verbatim.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// classifyStoreError maps the store's reserved-error-number convention onto
// typed errors.  Error number 51000 with message "vehicleNotFound" becomes
// ErrVehicleNotFound; 51000 with any other message becomes a
// *BusinessRuleError carrying that message.  Everything else (connectivity,
// unexpected shape) passes through unclassified for the central handler.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == domainErrNumber {
		if me.Message == vehicleNotFoundMsg {
			return ErrVehicleNotFound
		}
		return &BusinessRuleError{Message: me.Message}
	}
	return err
}
