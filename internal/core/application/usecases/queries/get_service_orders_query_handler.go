package queries

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServiceOrdersQueryHandler reads the service order dashboard directly
// from the database, bypassing the domain repositories.
type GetServiceOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceOrdersQueryHandler creates a handler for service order queries.
func NewGetServiceOrdersQueryHandler(db *gorm.DB) GetServiceOrdersQueryHandler {
	return GetServiceOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching service orders, newest first.
func (h GetServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetServiceOrdersQuery,
) ([]GetServiceOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any

	if query.Status() != serviceorder.StatusUnknown {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status().String())
	}
	if query.DateFrom() != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *query.DateFrom())
	}
	if query.DateTo() != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *query.DateTo())
	}

	sql := `
		SELECT
			id,
			customer_id,
			customer_name,
			customer_mobile,
			service_name,
			amount,
			description,
			payment_mode,
			total_amount,
			discount_amount,
			amount_paid,
			upload_ids,
			status,
			created_at
		FROM service_orders`
	if len(conditions) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	sql += "\n\t\tORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	serviceOrders := make([]GetServiceOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetServiceOrdersQueryResponse
		var id uuid.UUID
		var uploadsJSON string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.CustomerID,
			&resp.CustomerName,
			&resp.CustomerMobile,
			&resp.ServiceName,
			&resp.Amount,
			&resp.Description,
			&resp.PaymentMode,
			&resp.TotalAmount,
			&resp.DiscountAmount,
			&resp.AmountPaid,
			&uploadsJSON,
			&resp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		serviceOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = serviceOrderID
		resp.CreatedAt = createdAt
		resp.DueAmount = resp.TotalAmount - resp.AmountPaid - resp.DiscountAmount
		if err = json.Unmarshal([]byte(uploadsJSON), &resp.UploadIDs); err != nil {
			return nil, err
		}
		serviceOrders = append(serviceOrders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return serviceOrders, nil
}
