package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStoreError_Nil(t *testing.T) {
	assert.NoError(t, classifyStoreError(nil))
}

func TestClassifyStoreError_VehicleNotFound(t *testing.T) {
	err := classifyStoreError(&mysql.MySQLError{Number: 51000, Message: "vehicleNotFound"})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestClassifyStoreError_BusinessRule(t *testing.T) {
	err := classifyStoreError(&mysql.MySQLError{Number: 51000, Message: "vehicleReserved"})

	var bre *BusinessRuleError
	if assert.ErrorAs(t, err, &bre) {
		assert.Equal(t, "vehicleReserved", bre.Message)
	}
	assert.NotErrorIs(t, err, ErrVehicleNotFound)
}

func TestClassifyStoreError_WrappedDriverError(t *testing.T) {
	wrapped := fmt.Errorf("exec list: %w",
		&mysql.MySQLError{Number: 51000, Message: "vehicleNotFound"})
	assert.ErrorIs(t, classifyStoreError(wrapped), ErrVehicleNotFound)
}

func TestClassifyStoreError_OtherNumberPassesThrough(t *testing.T) {
	in := &mysql.MySQLError{Number: 1045, Message: "access denied"}
	out := classifyStoreError(in)

	var me *mysql.MySQLError
	assert.ErrorAs(t, out, &me)
	assert.Equal(t, uint16(1045), me.Number)
	var bre *BusinessRuleError
	assert.False(t, errors.As(out, &bre))
}

func TestClassifyStoreError_PlainErrorPassesThrough(t *testing.T) {
	in := errors.New("dial tcp: connection refused")
	assert.Equal(t, in, classifyStoreError(in))
}
