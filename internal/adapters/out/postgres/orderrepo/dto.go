// Package orderrepo persists order aggregates and their audit log.
// It maps the aggregate onto an orders row plus append-only order_events
// rows, and enforces optimistic concurrency through a version column.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
)

// OrderDTO is the database shape of an order aggregate. Enumerations are
// stored in their wire form so raw reports stay readable.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time

	SenderName  string
	SenderPhone string

	PickupAddress  string
	PickupMapLink  string
	DropoffAddress string
	DropoffMapLink string

	Kind string
	Tier string

	ReturnTrip bool
	Bulky      bool
	Heavy      bool
	WaitingFee int64

	CourierID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"index"`

	Ongkir             int64
	OngkirPayment      string
	CODNominal         int64
	CODPaid            bool
	NonCodPaid         bool
	DanaTalangan       int64
	TalanganReimbursed bool

	Version int
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderEventDTO is one append-only audit log row. Rows are only ever
// inserted; the primary key preserves append order within an order.
type OrderEventDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Kind       string
	OccurredAt time.Time
	ActorType  string
	ActorID    string
	Metadata   string `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming convention.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	addOns := aggregate.AddOns()
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CreatedAt:          aggregate.CreatedAt(),
		SenderName:         aggregate.Sender().Name,
		SenderPhone:        aggregate.Sender().Phone,
		PickupAddress:      aggregate.Pickup().Address,
		PickupMapLink:      aggregate.Pickup().MapLink,
		DropoffAddress:     aggregate.Dropoff().Address,
		DropoffMapLink:     aggregate.Dropoff().MapLink,
		Kind:               aggregate.Kind().String(),
		Tier:               aggregate.Tier().String(),
		ReturnTrip:         addOns.ReturnTrip,
		Bulky:              addOns.Bulky,
		Heavy:              addOns.Heavy,
		WaitingFee:         addOns.WaitingFee,
		CourierID:          courierID,
		Status:             aggregate.Status().String(),
		Ongkir:             aggregate.Ongkir(),
		OngkirPayment:      aggregate.OngkirPayment().String(),
		CODNominal:         aggregate.CODNominal(),
		CODPaid:            aggregate.CODPaid(),
		NonCodPaid:         aggregate.NonCodPaid(),
		DanaTalangan:       aggregate.DanaTalangan(),
		TalanganReimbursed: aggregate.TalanganReimbursed(),
		// Stored version runs one ahead of the loaded aggregate; the
		// conditional update keys on the old value.
		Version: aggregate.Version() + 1,
	}
}

func eventsFromDomain(orderID kernel.UUID, events []order.Event) ([]OrderEventDTO, error) {
	dtos := make([]OrderEventDTO, 0, len(events))
	for _, event := range events {
		metadata, err := json.Marshal(event.Metadata)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, OrderEventDTO{
			OrderID:    orderID.Bytes(),
			Kind:       string(event.Kind),
			OccurredAt: event.OccurredAt,
			ActorType:  string(event.Actor.Type),
			ActorID:    event.Actor.ID,
			Metadata:   string(metadata),
		})
	}
	return dtos, nil
}

func toDomain(dto OrderDTO, eventDTOs []OrderEventDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	kind, err := order.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	tier, err := order.TierFromString(dto.Tier)
	if err != nil {
		return nil, err
	}
	paymentMode, err := order.PaymentModeFromString(dto.OngkirPayment)
	if err != nil {
		return nil, err
	}

	events := make([]order.Event, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		var metadata map[string]string
		if eventDTO.Metadata != "" {
			if err = json.Unmarshal([]byte(eventDTO.Metadata), &metadata); err != nil {
				return nil, err
			}
		}
		events = append(events, order.Event{
			Kind:       order.EventKind(eventDTO.Kind),
			OccurredAt: eventDTO.OccurredAt,
			Actor:      order.Actor{Type: order.ActorType(eventDTO.ActorType), ID: eventDTO.ActorID},
			Metadata:   metadata,
		})
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:        id,
		CreatedAt: dto.CreatedAt,
		Sender:    order.Sender{Name: dto.SenderName, Phone: dto.SenderPhone},
		Pickup:    order.Stop{Address: dto.PickupAddress, MapLink: dto.PickupMapLink},
		Dropoff:   order.Stop{Address: dto.DropoffAddress, MapLink: dto.DropoffMapLink},
		Kind:      kind,
		Tier:      tier,
		AddOns: order.AddOns{
			ReturnTrip: dto.ReturnTrip,
			Bulky:      dto.Bulky,
			Heavy:      dto.Heavy,
			WaitingFee: dto.WaitingFee,
		},
		CourierID:          courierID,
		Status:             status,
		Ongkir:             dto.Ongkir,
		OngkirPayment:      paymentMode,
		CODNominal:         dto.CODNominal,
		CODPaid:            dto.CODPaid,
		NonCodPaid:         dto.NonCodPaid,
		DanaTalangan:       dto.DanaTalangan,
		TalanganReimbursed: dto.TalanganReimbursed,
		Version:            dto.Version,
		Events:             events,
	})
}
