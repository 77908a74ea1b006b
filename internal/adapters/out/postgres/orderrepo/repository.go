package orderrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
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

// Add saves a new order and its pending audit events.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.appendEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order conditionally on the version it was loaded
// with. A lost race surfaces as errs.ErrConcurrentModification and leaves
// the row untouched; the audit rows are only appended when the row write
// went through.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	if err := r.appendEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, audit log included.
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

	events, err := r.loadEvents(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, events)
}

// GetAllActive retrieves every order not yet in a terminal status, oldest
// first. Audit logs are loaded per order; the active set is small.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{
			order.Selesai.String(), order.Cancelled.String(), order.Rejected.String(),
		}).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		events, eventsErr := r.loadEvents(ctx, dto.ID)
		if eventsErr != nil {
			return nil, eventsErr
		}
		aggregate, domainErr := toDomain(dto, events)
		if domainErr != nil {
			return nil, domainErr
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func (r *GormOrderRepository) appendEvents(ctx context.Context, aggregate *order.Order) error {
	pending := aggregate.PendingEvents()
	if len(pending) == 0 {
		return nil
	}

	dtos, err := eventsFromDomain(aggregate.ID(), pending)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	aggregate.MarkEventsFlushed()
	return nil
}

func (r *GormOrderRepository) loadEvents(ctx context.Context, orderID uuid.UUID) ([]OrderEventDTO, error) {
	var events []OrderEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
