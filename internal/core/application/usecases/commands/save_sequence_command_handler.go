package commands

import (
	"context"
)

// SaveSequenceCommandHandler persists a day board order in one transaction.
type SaveSequenceCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSaveSequenceCommandHandler(uowFactory OrderUoWFactory) SaveSequenceCommandHandler {
	return SaveSequenceCommandHandler{uowFactory: uowFactory}
}

// Handle stores the sequence. Orders of the day left out of the command lose
// their sequence; an ID from another day fails the whole command.
func (h SaveSequenceCommandHandler) Handle(ctx context.Context, cmd SaveSequenceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateSequence(ctx, cmd.Day(), cmd.OrderIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
