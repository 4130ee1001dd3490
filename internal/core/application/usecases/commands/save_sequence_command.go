package commands

import (
	"errors"
	"fmt"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

var ErrSaveSequenceCommandIsNotConstructed = errors.New(
	"SaveSequenceCommand must be created via NewSaveSequenceCommand constructor",
)

// SaveSequenceCommand stores the board order of a day. The order at position i of
// OrderIDs gets sequence i.
//
// Example:
//
//	cmd, err := NewSaveSequenceCommand(day, []kernel.UUID{first, second, third})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type SaveSequenceCommand struct { //nolint:recvcheck //using for validation
	day      kernel.Day
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveSequenceCommand validates day and every ID, and rejects duplicate IDs.
// An empty list is valid and clears the sequence of every order of the day.
func NewSaveSequenceCommand(day kernel.Day, orderIDs []kernel.UUID) (SaveSequenceCommand, error) {
	cmd := SaveSequenceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDay(day),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return SaveSequenceCommand{}, err
	}

	return cmd, nil
}

func (c SaveSequenceCommand) Validate() error {
	return c.guard.Validate(ErrSaveSequenceCommandIsNotConstructed)
}

func (c SaveSequenceCommand) Day() kernel.Day {
	return c.day
}

// OrderIDs returns the board order. The slice is a copy.
func (c SaveSequenceCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

func (c *SaveSequenceCommand) setDay(day kernel.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	c.day = day
	return nil
}

func (c *SaveSequenceCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	ids := make([]kernel.UUID, 0, len(orderIDs))
	for i, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("orderIds[%d]", i), err)
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", fmt.Errorf("%s is listed twice", id))
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	c.orderIDs = ids
	return nil
}
