package queries

import (
	"context"

	"gorm.io/gorm"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler reads the active order board from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are oldest first so the longest-waiting
// jobs surface at the top of the board.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			created_at,
			status,
			courier_id,
			sender_name,
			pickup_address,
			dropoff_address,
			kind,
			tier,
			ongkir,
			ongkir_payment,
			cod_nominal,
			cod_paid,
			non_cod_paid,
			dana_talangan,
			talangan_reimbursed
		FROM orders
		WHERE status NOT IN (?, ?, ?)
	`
	args := []any{
		order.Selesai.String(), order.Cancelled.String(), order.Rejected.String(),
	}
	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, status.String())
	}
	if courierID := query.CourierID(); courierID != nil {
		sql += " AND courier_id = ?"
		args = append(args, courierID.String())
	}
	sql += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp                    GetActiveOrdersQueryResponse
			id                      string
			courierID               *string
			statusStr, kindStr      string
			tierStr, paymentModeStr string
		)

		if err = rows.Scan(
			&id,
			&resp.CreatedAt,
			&statusStr,
			&courierID,
			&resp.SenderName,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&kindStr,
			&tierStr,
			&resp.Ongkir,
			&paymentModeStr,
			&resp.CODNominal,
			&resp.CODPaid,
			&resp.NonCodPaid,
			&resp.DanaTalangan,
			&resp.TalanganReimbursed,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if courierID != nil {
			cid, cidErr := kernel.UUIDFromString(*courierID)
			if cidErr != nil {
				return nil, cidErr
			}
			resp.CourierID = &cid
		}
		if resp.Status, err = order.StatusFromString(statusStr); err != nil {
			return nil, err
		}
		if resp.Kind, err = order.KindFromString(kindStr); err != nil {
			return nil, err
		}
		if resp.Tier, err = order.TierFromString(tierStr); err != nil {
			return nil, err
		}
		if resp.OngkirPayment, err = order.PaymentModeFromString(paymentModeStr); err != nil {
			return nil, err
		}

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
