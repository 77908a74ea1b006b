package services

import (
	"errors"
	"sort"

	"kurir/internal/core/domain/model/courier"
	"kurir/internal/pkg/errs"
)

// ErrCourierNotFound is returned when no courier is eligible for assignment.
var ErrCourierNotFound = errors.New("courier not found")

// CourierLoad pairs a courier with the number of orders currently assigned to
// them that have not reached a terminal status.
type CourierLoad struct {
	Courier      *courier.Courier
	ActiveOrders int
}

// CourierBalancer ranks couriers for assignment suggestions.
//
// Ranking is advisory: the dispatcher sees the full ordered list and may pick
// anyone on it. Online couriers come first, lighter load wins within each
// group, and couriers that compare equal keep their input order so repeated
// calls over the same roster produce the same list.
type CourierBalancer struct{}

// Rank returns eligible couriers best-first. Deactivated couriers are
// excluded entirely. Couriers with a nil or unconstructed aggregate are
// rejected before ranking.
func (CourierBalancer) Rank(loads []CourierLoad) ([]CourierLoad, error) {
	ranked := make([]CourierLoad, 0, len(loads))
	for _, load := range loads {
		if load.Courier == nil {
			return nil, errs.NewValueIsRequiredError("courier")
		}
		if err := load.Courier.Validate(); err != nil {
			return nil, err
		}
		if load.ActiveOrders < 0 {
			return nil, errs.NewValueIsOutOfRangeError("activeOrders", load.ActiveOrders, 0, "unbounded")
		}
		if !load.Courier.IsActive() {
			continue
		}
		ranked = append(ranked, load)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Courier.IsOnline() != ranked[j].Courier.IsOnline() {
			return ranked[i].Courier.IsOnline()
		}
		return ranked[i].ActiveOrders < ranked[j].ActiveOrders
	})
	return ranked, nil
}

// SuggestBest returns the top-ranked courier, or ErrCourierNotFound when no
// eligible courier remains after filtering.
func (b CourierBalancer) SuggestBest(loads []CourierLoad) (*courier.Courier, error) {
	ranked, err := b.Rank(loads)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, ErrCourierNotFound
	}
	return ranked[0].Courier, nil
}
