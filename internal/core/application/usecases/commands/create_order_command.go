package commands

import (
	"errors"
	"strings"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("client name is required")
	ErrAddressIsRequired    = errors.New("address is required")
	ErrTotalIsInvalid       = errors.New("total must not be negative")
)

// CreateOrderCommand represents a request to register a new delivery order on a day board.
//
// Example:
//
//	day, _ := kernel.ParseDay("2024-03-15")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Ana Ruiz", "Av. Central 120", 35.5, false, day)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientName  string
	address     string
	total       float64
	hasCredit   bool
	deliveryDay kernel.Day

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates the order ID and delivery day, requires a client name and address,
// and rejects negative totals.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientName string,
	address string,
	total float64,
	hasCredit bool,
	deliveryDay kernel.Day,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		hasCredit: hasCredit,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientName(clientName),
		orderCommand.setAddress(address),
		orderCommand.setTotal(total),
		orderCommand.setDeliveryDay(deliveryDay),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c CreateOrderCommand) Total() float64 {
	return c.total
}

func (c CreateOrderCommand) HasCredit() bool {
	return c.hasCredit
}

func (c CreateOrderCommand) DeliveryDay() kernel.Day {
	return c.deliveryDay
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if strings.TrimSpace(clientName) == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setTotal(total float64) error {
	if total < 0 {
		return ErrTotalIsInvalid
	}

	c.total = total
	return nil
}

func (c *CreateOrderCommand) setDeliveryDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.deliveryDay = day
	return nil
}
