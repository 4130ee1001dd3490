package commands

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand marks a registered order as delivered.
type DeliverOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
