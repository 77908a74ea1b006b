// Package courierrepo persists courier aggregates.
package courierrepo

import (
	"github.com/google/uuid"

	"kurir/internal/core/domain/model/courier"
	"kurir/internal/core/domain/model/kernel"
)

// CourierDTO is the database shape of a courier aggregate.
type CourierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Active bool `gorm:"index"`
	Online bool
}

// TableName overrides GORM's default naming convention.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Active: aggregate.IsActive(),
		Online: aggregate.IsOnline(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return courier.RestoreCourier(id, dto.Name, dto.Active, dto.Online)
}
