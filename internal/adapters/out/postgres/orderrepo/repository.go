package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves every field of an existing order, zero values included.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByDeliveryDay returns the orders of day, sequenced ones first.
func (r *GormOrderRepository) ListByDeliveryDay(ctx context.Context, day kernel.Day) ([]*order.Order, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("delivery_date = ?", day.Time()).
		Order("sequence ASC NULLS LAST").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateSequence gives ids[i] sequence i and clears the sequence of every other order
// of day. It fails with ErrObjectNotFound, changing nothing, when an id is unknown or
// belongs to another day. Run it inside a unit of work to make it atomic.
func (r *GormOrderRepository) UpdateSequence(ctx context.Context, day kernel.Day, ids []kernel.UUID) error {
	if err := day.Validate(); err != nil {
		return err
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		raw[i] = id.String()
	}

	db := r.db.WithContext(ctx)

	if len(raw) > 0 {
		var found int64
		err := db.Model(&OrderDTO{}).
			Where("delivery_date = ? AND id = ANY(?::uuid[])", day.Time(), pq.Array(raw)).
			Count(&found).Error
		if err != nil {
			return err
		}
		if found != int64(len(raw)) {
			return errs.NewObjectNotFoundErrorWithCause("orderIDs", day.String(),
				fmt.Errorf("%d of %d orders belong to the day", found, len(raw)))
		}
	}

	err := db.Model(&OrderDTO{}).
		Where("delivery_date = ? AND sequence IS NOT NULL", day.Time()).
		Update("sequence", gorm.Expr("NULL")).Error
	if err != nil {
		return err
	}

	if len(raw) == 0 {
		return nil
	}

	return db.Exec(`
		UPDATE orders AS o
		SET sequence = s.position - 1
		FROM unnest(?::uuid[]) WITH ORDINALITY AS s(id, position)
		WHERE o.id = s.id
	`, pq.Array(raw)).Error
}
