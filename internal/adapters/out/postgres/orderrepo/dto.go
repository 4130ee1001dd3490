// Package orderrepo persists order aggregates with GORM. It maps between the order
// domain entity and its row in the orders table.
package orderrepo

import (
	"time"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Rows are looked up by delivery day and read back in sequence order.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientName   string    `gorm:"not null"`
	Address      string    `gorm:"not null"`
	Total        float64   `gorm:"type:double precision;not null"`
	HasCredit    bool      `gorm:"not null;default:false"`
	DeliveryDate time.Time `gorm:"type:date;not null;index:idx_orders_day_sequence,priority:1"`
	Status       int       `gorm:"not null;index"`
	Sequence     *int      `gorm:"index:idx_orders_day_sequence,priority:2"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		ClientName:   o.ClientName(),
		Address:      o.Address(),
		Total:        o.Total(),
		HasCredit:    o.HasCredit(),
		DeliveryDate: o.DeliveryDay().Time(),
		Status:       int(o.Status()),
		Sequence:     o.Sequence(),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, so stored rows pass the same
// validation as new orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.ClientName,
		dto.Address,
		dto.Total,
		dto.HasCredit,
		kernel.DayOf(dto.DeliveryDate),
		order.Status(dto.Status),
		dto.Sequence,
	)
}
