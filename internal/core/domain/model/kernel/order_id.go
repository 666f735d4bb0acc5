package kernel

import (
	"tracking/internal/pkg/errs"
)

// ErrOrderIDIsRequired indicates that an OrderID was constructed from an
// empty string or used as a zero value.
var ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id must not be empty")

// OrderID is the externally assigned identifier of an order (for example
// "20250115-001"). The tracker treats it as opaque: the upstream stores own
// the identifier syntax, so only non-emptiness is validated here.
//
// The zero value is invalid; use NewOrderID.
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its string form. Returns an error for
// the empty string.
func NewOrderID(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, ErrOrderIDIsRequired
	}
	return OrderID{value: value}, nil
}

// String returns the identifier as supplied by the upstream system.
func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether two order identifiers are the same.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsRequired for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsRequired
	}
	return nil
}
