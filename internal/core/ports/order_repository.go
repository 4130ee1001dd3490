package ports

import (
	"context"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
)

// OrderReader loads the orders of one delivery day. Used to open and refresh boards.
type OrderReader interface {
	// ListByDeliveryDay returns every order of day, in no particular order.
	ListByDeliveryDay(ctx context.Context, day kernel.Day) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderReader

	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateSequence stores ids as the board order of day: the order at ids[i] gets
	// sequence i. Orders of day missing from ids lose their sequence. Every id must
	// belong to day.
	UpdateSequence(ctx context.Context, day kernel.Day, ids []kernel.UUID) error
}
