package queries

import (
	"context"
	"strings"
	"time"

	"studiodesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPhotoOrdersQueryHandler reads the order dashboard directly from the
// database, bypassing the domain repositories.
//
// Example:
//
//	handler := NewGetPhotoOrdersQueryHandler(db)
//	query, _ := NewGetPhotoOrdersQuery(nil, nil, "", nil, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get photo orders: %v", err)
//	    return err
//	}
type GetPhotoOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPhotoOrdersQueryHandler creates a handler for dashboard order queries.
func NewGetPhotoOrdersQueryHandler(db *gorm.DB) GetPhotoOrdersQueryHandler {
	return GetPhotoOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching orders, newest first.
// A filter that selects neither fulfillment class short-circuits to an
// empty result without touching the database.
func (h GetPhotoOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPhotoOrdersQuery,
) ([]GetPhotoOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetPhotoOrdersQueryResponse, 0)

	wantInstant, wantRegular, classFiltered := classFilter(query.Instant(), query.Regular())
	if classFiltered && !wantInstant && !wantRegular {
		return orders, nil
	}

	var conditions []string
	var args []any

	if query.DateFrom() != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *query.DateFrom())
	}
	if query.DateTo() != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *query.DateTo())
	}
	if search := strings.TrimSpace(query.Search()); search != "" {
		conditions = append(conditions,
			"(customer_name ILIKE ? OR customer_id ILIKE ? OR id::text ILIKE ? OR upload_id ILIKE ?)")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if classFiltered {
		conditions = append(conditions, "is_instant = ?")
		args = append(args, wantInstant)
	}

	sql := `
		SELECT
			id,
			customer_id,
			customer_name,
			customer_mobile,
			description,
			payment_mode,
			total_amount,
			discount_amount,
			amount_paid,
			upload_id,
			is_instant,
			status,
			created_at
		FROM orders`
	if len(conditions) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	sql += "\n\t\tORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPhotoOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.CustomerID,
			&resp.CustomerName,
			&resp.CustomerMobile,
			&resp.Description,
			&resp.PaymentMode,
			&resp.TotalAmount,
			&resp.DiscountAmount,
			&resp.AmountPaid,
			&resp.UploadID,
			&resp.IsInstant,
			&resp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.CreatedAt = createdAt
		resp.DueAmount = resp.TotalAmount - resp.AmountPaid - resp.DiscountAmount
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// classFilter collapses the tri-state instant/regular flags into a single
// is_instant predicate. filtered is false when neither flag was specified
// or when both classes are allowed.
func classFilter(instant, regular *bool) (wantInstant, wantRegular, filtered bool) {
	if instant == nil && regular == nil {
		return false, false, false
	}
	wantInstant = instant != nil && *instant
	wantRegular = regular != nil && *regular
	if wantInstant && wantRegular {
		return wantInstant, wantRegular, false
	}
	return wantInstant, wantRegular, true
}
