package commands

import (
	"context"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler applies the Registered -> Delivered transition.
//
// Example:
//
//	handler := NewDeliverOrderCommandHandler(uowFactory)
//	cmd, _ := NewDeliverOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such order")
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    log.Println("Order is already delivered or cancelled")
//	}
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeOrderStatus(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Deliver)
}

// CancelOrderCommandHandler applies the Registered -> Cancelled transition.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeOrderStatus(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Cancel)
}

// changeOrderStatus loads the order, applies transition and stores it in one transaction.
func changeOrderStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	transition func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = transition(o); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
