package order

import (
	"fmt"

	"routeboard/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Registered ──┬──> Delivered
//	             └──> Cancelled
//
// Delivered and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Registered is the initial status of an order waiting to be delivered.
	Registered

	// Delivered indicates the order reached the client.
	Delivered

	// Cancelled indicates the order was voided before delivery.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Registered: "Registered",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is one of Registered, Delivered or Cancelled.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// Deliver transitions Registered to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Registered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions Registered to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Registered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
