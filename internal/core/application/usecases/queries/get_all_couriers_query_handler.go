package queries

import (
	"context"

	"gorm.io/gorm"

	"kurir/internal/core/domain/model/kernel"
)

// GetAllCouriersQueryHandler reads the courier roster from the database.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for roster queries.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query. Deactivated couriers stay in the roster; hiding
// them is the suggestion query's concern, not this one's.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, active, online
		FROM couriers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetAllCouriersQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetAllCouriersQueryResponse
			id   string
		)
		if err = rows.Scan(&id, &resp.Name, &resp.Active, &resp.Online); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
