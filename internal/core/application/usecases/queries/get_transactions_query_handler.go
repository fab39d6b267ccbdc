package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/transaction"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransactionsQueryHandler reads the transactions dashboard directly
// from the database, bypassing the domain repositories.
type GetTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionsQueryHandler creates a handler for transaction queries.
func NewGetTransactionsQueryHandler(db *gorm.DB) GetTransactionsQueryHandler {
	return GetTransactionsQueryHandler{db: db}
}

// Handle executes the query and returns matching transactions, newest first.
func (h GetTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionsQuery,
) ([]GetTransactionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	transactions := make([]GetTransactionsQueryResponse, 0)

	var conditions []string
	var args []any

	if query.Kind() != transaction.KindUnknown {
		conditions = append(conditions, "kind = ?")
		args = append(args, query.Kind().String())
	}
	if query.Status() != transaction.StatusUnknown {
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
			kind,
			customer_id,
			customer_name,
			customer_mobile,
			bill_operator,
			bill_id,
			transfer_type,
			upi_id,
			bank_name,
			account_number,
			recipient_name,
			total_amount,
			amount_paid,
			commission,
			payment_mode,
			description,
			upload_id,
			status,
			created_at
		FROM transactions`
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
		var resp GetTransactionsQueryResponse
		var id uuid.UUID
		var createdAt time.Time
		var billOperator, billID string
		var transferType, upiID, bankName, accountNumber, recipientName string

		err = rows.Scan(
			&id,
			&resp.Kind,
			&resp.CustomerID,
			&resp.CustomerName,
			&resp.CustomerMobile,
			&billOperator,
			&billID,
			&transferType,
			&upiID,
			&bankName,
			&accountNumber,
			&recipientName,
			&resp.Amount,
			&resp.AmountPaid,
			&resp.Commission,
			&resp.PaymentMode,
			&resp.Description,
			&resp.UploadID,
			&resp.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		txID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = txID
		resp.CreatedAt = createdAt
		resp.Destination = destination(resp.Kind, billOperator, billID,
			transferType, upiID, bankName, accountNumber, recipientName)
		transactions = append(transactions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func destination(kind, billOperator, billID,
	transferType, upiID, bankName, accountNumber, recipientName string,
) string {
	switch kind {
	case transaction.KindBillPayment.String():
		return fmt.Sprintf("%s / %s", billOperator, billID)
	case transaction.KindMoneyTransfer.String():
		if transferType == transaction.TransferTypeUPI.String() {
			return upiID
		}
		return fmt.Sprintf("%s, %s (%s)", recipientName, accountNumber, bankName)
	default:
		return ""
	}
}
