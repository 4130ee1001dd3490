// Package queries contains read-side use cases. Handlers read straight from the
// database with raw SQL and return flat response structs.
package queries

import (
	"errors"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/pkg/guard"
)

var ErrGetDayOrdersQueryIsNotConstructed = errors.New(
	"GetDayOrdersQuery must be created via NewGetDayOrdersQuery constructor",
)

// GetDayOrdersQuery retrieves the board of one delivery day in saved order.
//
// Example:
//
//	day, _ := kernel.ParseDay("2024-03-15")
//	query, _ := NewGetDayOrdersQuery(day)
//	orders, err := handler.Handle(ctx, query)
type GetDayOrdersQuery struct {
	day kernel.Day

	guard guard.ConstructorGuard
}

func NewGetDayOrdersQuery(day kernel.Day) (GetDayOrdersQuery, error) {
	if err := day.Validate(); err != nil {
		return GetDayOrdersQuery{}, err
	}
	return GetDayOrdersQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDayOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDayOrdersQueryIsNotConstructed)
}

func (q GetDayOrdersQuery) Day() kernel.Day {
	return q.day
}

// GetDayOrdersQueryResponse is one row of a day board.
type GetDayOrdersQueryResponse struct {
	ID         kernel.UUID
	ClientName string
	Address    string
	Total      float64
	HasCredit  bool
	Status     order.Status
	Sequence   *int
}
