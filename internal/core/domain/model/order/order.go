package order

import (
	"errors"
	"fmt"
	"strings"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a delivery order placed on a dispatcher's day board. It is the aggregate
// root for the order lifecycle and the item the board editor rearranges.
//
// Order follows these invariants:
//   - Must have a valid unique identifier; identity is by ID only
//   - Client name and address are required
//   - Total is never negative
//   - Belongs to exactly one delivery day
//   - Sequence, when present, is a non-negative board position
//   - Status transitions follow defined business rules
//
// The sequence is only a hint for the initial board ordering. The authoritative
// order of a board is whatever was last saved for the day.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientName is the name of the customer receiving the delivery
	clientName string

	// address is the delivery destination
	address string

	// total is the amount to collect
	total float64

	// hasCredit marks orders paid on credit
	hasCredit bool

	// deliveryDay is the board the order belongs to
	deliveryDay kernel.Day

	// status represents the current state in the order lifecycle
	status Status

	// sequence is the last saved board position, nil when never sequenced
	sequence *int

	// isConstructed ensures the order was created via a factory
	isConstructed bool
}

// NewOrder creates a freshly registered order. New orders carry no sequence and are
// shown after every sequenced order of their day until a board arrangement is saved.
//
// Example:
//
//	day, _ := kernel.ParseDay("2024-03-15")
//	o, err := order.NewOrder(kernel.NewUUID(), "Ana Ruiz", "Av. Central 120", 35.5, false, day)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	clientName string,
	address string,
	total float64,
	hasCredit bool,
	deliveryDay kernel.Day,
) (*Order, error) {
	order := &Order{
		hasCredit:     hasCredit,
		status:        Registered,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientName(clientName),
		order.setAddress(address),
		order.setTotal(total),
		order.setDeliveryDay(deliveryDay),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state. It applies the same validation
// as NewOrder and additionally checks the stored status and sequence.
func RestoreOrder(
	id kernel.UUID,
	clientName string,
	address string,
	total float64,
	hasCredit bool,
	deliveryDay kernel.Day,
	status Status,
	sequence *int,
) (*Order, error) {
	order, err := NewOrder(id, clientName, address, total, hasCredit, deliveryDay)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if sequence != nil {
		if err := order.PlaceAt(*sequence); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the name of the customer.
func (o *Order) ClientName() string {
	return o.clientName
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Total returns the amount to collect.
func (o *Order) Total() float64 {
	return o.total
}

// HasCredit reports whether the order is paid on credit.
func (o *Order) HasCredit() bool {
	return o.hasCredit
}

// DeliveryDay returns the board the order belongs to.
func (o *Order) DeliveryDay() kernel.Day {
	return o.deliveryDay
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Sequence returns the last saved board position, or nil if the order was never sequenced.
// The returned pointer is a copy.
func (o *Order) Sequence() *int {
	if o.sequence == nil {
		return nil
	}
	position := *o.sequence
	return &position
}

// PlaceAt records the 0-based board position the order was saved at.
func (o *Order) PlaceAt(position int) error {
	if position < 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence is invalid", fmt.Errorf("%d is negative", position))
	}
	o.sequence = &position
	return nil
}

// Deliver marks the order as delivered.
//
// Only registered orders can be delivered. Delivered is a final state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel voids the order. Only registered orders can be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(clientName string) error {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// setTotal rejects negative totals. Zero is allowed for courtesy deliveries.
func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%.2f is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setDeliveryDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}
	o.deliveryDay = day
	return nil
}
