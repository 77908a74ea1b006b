// Package queries contains read-only operations over the dispatch store.
// Query handlers bypass the aggregates and read projections straight from
// the database; they never mutate state.
package queries

import (
	"errors"
	"time"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves orders that have not reached a terminal
// status, optionally narrowed to one status or one courier.
type GetActiveOrdersQuery struct {
	status    *order.Status
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order board.
// Both filters are optional; a terminal status filter is rejected since the
// board only shows live work.
func NewGetActiveOrdersQuery(status *order.Status, courierID *kernel.UUID) (GetActiveOrdersQuery, error) {
	q := GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		if status.IsTerminal() {
			return GetActiveOrdersQuery{}, errors.New("active order board does not list terminal statuses")
		}
		q.status = status
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		q.courierID = courierID
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetActiveOrdersQuery) Status() *order.Status { return q.status }

// CourierID returns the optional courier filter.
func (q GetActiveOrdersQuery) CourierID() *kernel.UUID { return q.courierID }

// GetActiveOrdersQueryResponse is one row of the active order board.
type GetActiveOrdersQueryResponse struct {
	ID                 kernel.UUID
	CreatedAt          time.Time
	Status             order.Status
	CourierID          *kernel.UUID
	SenderName         string
	PickupAddress      string
	DropoffAddress     string
	Kind               order.Kind
	Tier               order.ServiceTier
	Ongkir             int64
	OngkirPayment      order.PaymentMode
	CODNominal         int64
	CODPaid            bool
	NonCodPaid         bool
	DanaTalangan       int64
	TalanganReimbursed bool
}
