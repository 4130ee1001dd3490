package queries

import (
	"context"
	"database/sql"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDayOrdersQueryHandler reads a day board: sequenced orders first by sequence,
// then unsequenced ones by client name.
type GetDayOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDayOrdersQueryHandler creates a handler for day board queries.
// Requires a GORM database connection for query execution.
func NewGetDayOrdersQueryHandler(db *gorm.DB) GetDayOrdersQueryHandler {
	return GetDayOrdersQueryHandler{db: db}
}

func (h GetDayOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDayOrdersQuery,
) ([]GetDayOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDayOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			address,
			total,
			has_credit,
			status,
			sequence
		FROM orders
		WHERE delivery_date = ?
		ORDER BY sequence ASC NULLS LAST, client_name, id
	`, query.Day().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDayOrdersQueryResponse
		var id uuid.UUID
		var status int
		var sequence sql.NullInt64

		err = rows.Scan(
			&id,
			&resp.ClientName,
			&resp.Address,
			&resp.Total,
			&resp.HasCredit,
			&status,
			&sequence,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)

		if sequence.Valid {
			position := int(sequence.Int64)
			resp.Sequence = &position
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
