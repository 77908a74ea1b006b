package queries

import (
	"context"

	"gorm.io/gorm"

	"kurir/internal/core/domain/model/order"
)

// GetSettlementReportQueryHandler derives the settlement position from order
// rows in two aggregate reads.
type GetSettlementReportQueryHandler struct {
	db *gorm.DB
}

// NewGetSettlementReportQueryHandler creates a handler for settlement reports.
func NewGetSettlementReportQueryHandler(db *gorm.DB) GetSettlementReportQueryHandler {
	return GetSettlementReportQueryHandler{db: db}
}

// Handle executes the report query. Cancelled and rejected orders count in
// the per-status breakdown but carry no outstanding liabilities: their COD
// was never collected and their fee is void.
func (h GetSettlementReportQueryHandler) Handle(
	ctx context.Context,
	query GetSettlementReportQuery,
) (GetSettlementReportQueryResponse, error) {
	var empty GetSettlementReportQueryResponse
	if err := query.Validate(); err != nil {
		return empty, err
	}

	where := " WHERE 1=1"
	args := []any{}
	if from := query.From(); from != nil {
		where += " AND created_at >= ?"
		args = append(args, *from)
	}
	if to := query.To(); to != nil {
		where += " AND created_at < ?"
		args = append(args, *to)
	}
	if courierID := query.CourierID(); courierID != nil {
		where += " AND courier_id = ?"
		args = append(args, courierID.String())
	}

	resp := GetSettlementReportQueryResponse{
		OrdersByStatus: make(map[order.Status]int),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(ongkir) FILTER (WHERE status NOT IN (?, ?)), 0),
			COALESCE(SUM(ongkir) FILTER (
				WHERE status NOT IN (?, ?) AND ongkir_payment = ? AND NOT non_cod_paid), 0),
			COALESCE(SUM(cod_nominal) FILTER (
				WHERE status NOT IN (?, ?) AND cod_nominal > 0 AND NOT cod_paid), 0),
			COALESCE(SUM(dana_talangan) FILTER (
				WHERE status NOT IN (?, ?) AND dana_talangan > 0 AND NOT talangan_reimbursed), 0)
		FROM orders`+where,
		append([]any{
			order.Cancelled.String(), order.Rejected.String(),
			order.Cancelled.String(), order.Rejected.String(), order.PayNonCOD.String(),
			order.Cancelled.String(), order.Rejected.String(),
			order.Cancelled.String(), order.Rejected.String(),
		}, args...)...).Row()
	if err := row.Scan(
		&resp.TotalOngkir,
		&resp.UnpaidNonCodOngkir,
		&resp.OutstandingCOD,
		&resp.OutstandingTalangan,
	); err != nil {
		return empty, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) FROM orders`+where+` GROUP BY status`, args...).Rows()
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			statusStr string
			count     int
		)
		if err = rows.Scan(&statusStr, &count); err != nil {
			return empty, err
		}
		status, statusErr := order.StatusFromString(statusStr)
		if statusErr != nil {
			return empty, statusErr
		}
		resp.OrdersByStatus[status] = count
	}
	if err = rows.Err(); err != nil {
		return empty, err
	}

	return resp, nil
}
