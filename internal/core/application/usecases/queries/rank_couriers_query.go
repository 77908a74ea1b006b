package queries

import (
	"errors"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/pkg/guard"
)

var ErrRankCouriersQueryIsNotConstructed = errors.New(
	"RankCouriersQuery must be created via NewRankCouriersQuery constructor",
)

// RankCouriersQuery produces the assignment suggestion list: active couriers
// with their live workload, ordered best-first.
type RankCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewRankCouriersQuery creates a query for courier suggestions.
func NewRankCouriersQuery() RankCouriersQuery {
	return RankCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q RankCouriersQuery) Validate() error {
	return q.guard.Validate(ErrRankCouriersQueryIsNotConstructed)
}

// RankCouriersQueryResponse is one suggestion row, best candidates first.
type RankCouriersQueryResponse struct {
	CourierID    kernel.UUID
	Name         string
	Online       bool
	ActiveOrders int
}
