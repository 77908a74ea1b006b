package queries

import (
	"context"

	"gorm.io/gorm"

	"kurir/internal/core/domain/model/courier"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/core/domain/services"
)

// RankCouriersQueryHandler joins the roster with live order counts and runs
// the result through the balancer. The ordering policy itself lives in the
// domain service; this handler only feeds it.
type RankCouriersQueryHandler struct {
	db       *gorm.DB
	balancer services.CourierBalancer
}

// NewRankCouriersQueryHandler creates a handler for courier suggestions.
func NewRankCouriersQueryHandler(db *gorm.DB) RankCouriersQueryHandler {
	return RankCouriersQueryHandler{db: db}
}

// Handle executes the suggestion query. Deactivated couriers never appear;
// offline couriers rank below online ones but stay listed since explicit
// assignment to them is still allowed.
func (h RankCouriersQueryHandler) Handle(
	ctx context.Context,
	query RankCouriersQuery,
) ([]RankCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.active,
			c.online,
			COUNT(o.id) AS active_orders
		FROM couriers c
		LEFT JOIN orders o
			ON o.courier_id = c.id
			AND o.status NOT IN (?, ?, ?)
		WHERE c.active
		GROUP BY c.id, c.name, c.active, c.online
		ORDER BY c.name, c.id
	`, order.Selesai.String(), order.Cancelled.String(), order.Rejected.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]services.CourierLoad, 0)
	for rows.Next() {
		var (
			id             string
			name           string
			active, online bool
			activeOrders   int
		)
		if err = rows.Scan(&id, &name, &active, &online, &activeOrders); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		restored, restoreErr := courier.RestoreCourier(courierID, name, active, online)
		if restoreErr != nil {
			return nil, restoreErr
		}
		loads = append(loads, services.CourierLoad{Courier: restored, ActiveOrders: activeOrders})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	ranked, err := h.balancer.Rank(loads)
	if err != nil {
		return nil, err
	}

	responses := make([]RankCouriersQueryResponse, 0, len(ranked))
	for _, load := range ranked {
		responses = append(responses, RankCouriersQueryResponse{
			CourierID:    load.Courier.ID(),
			Name:         load.Courier.Name(),
			Online:       load.Courier.IsOnline(),
			ActiveOrders: load.ActiveOrders,
		})
	}
	return responses, nil
}
