package ports

import (
	"context"

	"routeboard/internal/core/domain/model/kernel"
)

// SequenceGateway accepts the final arrangement of a day board.
//
// Editing sessions call SaveOrder from a background goroutine and feed the result
// back into the session, so implementations may block for as long as ctx allows.
// A returned error leaves the stored arrangement unchanged.
type SequenceGateway interface {
	SaveOrder(ctx context.Context, day kernel.Day, ids []kernel.UUID) error
}
