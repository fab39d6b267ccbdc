// Package transactionrepo persists bill payment and money transfer aggregates.
// Detail columns for both kinds live flat on the transactions table; the kind
// column decides which group is meaningful on restore.
package transactionrepo

import (
	"encoding/json"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/model/transaction"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting transactions.
type TransactionDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind             string    `gorm:"index"`
	CustomerID       string    `gorm:"index"`
	CustomerName     string
	CustomerMobile   string
	BillOperator     string
	BillID           string
	BillCustomerName string
	TransferType     string
	UpiID            string
	BankName         string
	AccountNumber    string
	IfscCode         string
	RecipientName    string
	PaymentMode      string
	TotalAmount      float64
	DiscountAmount   float64
	AmountPaid       float64
	Commission       float64
	Description      string
	UploadID         string
	Status           string `gorm:"index"`
	StatusHistory    string `gorm:"type:jsonb"`
	CreatedAt        time.Time `gorm:"index"`
}

// TableName specifies the database table name for transaction entities.
func (TransactionDTO) TableName() string {
	return "transactions"
}

type statusChangeDocument struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

func fromDomain(aggregate *transaction.Transaction) (TransactionDTO, error) {
	history := make([]statusChangeDocument, 0, len(aggregate.StatusHistory()))
	for _, change := range aggregate.StatusHistory() {
		history = append(history, statusChangeDocument{
			Status: change.Status.String(),
			At:     change.At,
		})
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return TransactionDTO{}, err
	}

	customer := aggregate.Customer()
	bill := aggregate.BillDetails()
	transfer := aggregate.TransferDetails()
	payment := aggregate.Payment()

	dto := TransactionDTO{
		ID:               aggregate.ID().Bytes(),
		Kind:             aggregate.Kind().String(),
		CustomerID:       customer.ID(),
		CustomerName:     customer.Name(),
		CustomerMobile:   customer.Mobile(),
		BillOperator:     bill.Operator(),
		BillID:           bill.BillID(),
		BillCustomerName: bill.BillCustomerName(),
		PaymentMode:      payment.Mode(),
		TotalAmount:      payment.TotalAmount(),
		DiscountAmount:   payment.DiscountAmount(),
		AmountPaid:       payment.AmountPaid(),
		Commission:       aggregate.Commission(),
		Description:      aggregate.Description(),
		UploadID:         aggregate.UploadID(),
		Status:           aggregate.Status().String(),
		StatusHistory:    string(historyJSON),
		CreatedAt:        aggregate.CreatedAt(),
	}

	if aggregate.Kind() == transaction.KindMoneyTransfer {
		dto.TransferType = transfer.TransferType().String()
		dto.UpiID = transfer.UPIID()
		dto.BankName = transfer.BankName()
		dto.AccountNumber = transfer.AccountNumber()
		dto.IfscCode = transfer.IFSCCode()
		dto.RecipientName = transfer.RecipientName()
	}

	return dto, nil
}

func toDomain(dto TransactionDTO) (*transaction.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := transaction.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerID, dto.CustomerName, dto.CustomerMobile)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(dto.PaymentMode, dto.TotalAmount, dto.DiscountAmount, dto.AmountPaid)
	if err != nil {
		return nil, err
	}

	var bill transaction.BillDetails
	var transfer transaction.TransferDetails
	switch kind {
	case transaction.KindBillPayment:
		bill, err = transaction.NewBillDetails(dto.BillOperator, dto.BillID, dto.BillCustomerName)
		if err != nil {
			return nil, err
		}
	case transaction.KindMoneyTransfer:
		transferType, typeErr := transaction.TransferTypeFromString(dto.TransferType)
		if typeErr != nil {
			return nil, typeErr
		}
		transfer, err = transaction.NewTransferDetails(transferType, dto.UpiID,
			dto.BankName, dto.AccountNumber, dto.IfscCode, dto.RecipientName)
		if err != nil {
			return nil, err
		}
	}

	status, err := transaction.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var historyDocs []statusChangeDocument
	if err = json.Unmarshal([]byte(dto.StatusHistory), &historyDocs); err != nil {
		return nil, err
	}
	history := make([]transaction.StatusChange, 0, len(historyDocs))
	for _, doc := range historyDocs {
		entryStatus, statusErr := transaction.StatusFromString(doc.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		history = append(history, transaction.StatusChange{Status: entryStatus, At: doc.At})
	}

	return transaction.RestoreTransaction(id, kind, customer, bill, transfer,
		payment, dto.Commission, dto.Description, dto.UploadID, status, dto.CreatedAt, history)
}
