package queries

import (
	"errors"
	"time"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/guard"
)

var (
	ErrGetSettlementReportQueryIsNotConstructed = errors.New(
		"GetSettlementReportQuery must be created via NewGetSettlementReportQuery constructor",
	)
	// ErrReportRangeIsInverted is returned when the from bound lies after to.
	ErrReportRangeIsInverted = errors.New("report range is inverted")
)

// GetSettlementReportQuery computes outstanding liabilities over a time
// window. The report is always derived from order rows on read; totals are
// never stored.
type GetSettlementReportQuery struct {
	from      *time.Time
	to        *time.Time
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSettlementReportQuery creates a settlement report query. All bounds
// are optional; an empty query covers everything.
func NewGetSettlementReportQuery(from, to *time.Time, courierID *kernel.UUID) (GetSettlementReportQuery, error) {
	q := GetSettlementReportQuery{guard: guard.NewConstructorGuard()}

	if from != nil && to != nil && from.After(*to) {
		return GetSettlementReportQuery{}, ErrReportRangeIsInverted
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return GetSettlementReportQuery{}, err
		}
		q.courierID = courierID
	}
	q.from = from
	q.to = to
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSettlementReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSettlementReportQueryIsNotConstructed)
}

// From returns the optional lower bound on order creation time.
func (q GetSettlementReportQuery) From() *time.Time { return q.from }

// To returns the optional upper bound on order creation time.
func (q GetSettlementReportQuery) To() *time.Time { return q.to }

// CourierID returns the optional courier filter.
func (q GetSettlementReportQuery) CourierID() *kernel.UUID { return q.courierID }

// GetSettlementReportQueryResponse aggregates the money position of the
// selected orders.
type GetSettlementReportQueryResponse struct {
	// TotalOngkir sums the fee of every selected order.
	TotalOngkir int64
	// UnpaidNonCodOngkir sums fees of non-COD orders not yet marked paid.
	UnpaidNonCodOngkir int64
	// OutstandingCOD sums collected-but-unremitted COD nominals.
	OutstandingCOD int64
	// OutstandingTalangan sums advance floats not yet reimbursed.
	OutstandingTalangan int64
	// OrdersByStatus counts the selected orders per lifecycle status.
	OrdersByStatus map[order.Status]int
}
