package commands

import (
	"context"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/model/transaction"
)

// CreateTransactionCommandHandler handles the creation of bill payment and
// money transfer transactions. The new transaction starts Pending; the
// counter advances it once the payment goes through.
type CreateTransactionCommandHandler struct {
	uowFactory TransactionUoWFactory
}

// NewCreateTransactionCommandHandler creates a handler for transaction creation.
func NewCreateTransactionCommandHandler(uowFactory TransactionUoWFactory) CreateTransactionCommandHandler {
	return CreateTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command and returns the new transaction's id.
func (h *CreateTransactionCommandHandler) Handle(ctx context.Context, cmd CreateTransactionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := h.buildTransaction(cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TransactionRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}

func (h *CreateTransactionCommandHandler) buildTransaction(cmd CreateTransactionCommand) (*transaction.Transaction, error) {
	customer, err := order.NewCustomer(cmd.CustomerID(), cmd.CustomerName(), cmd.CustomerMobile())
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(cmd.PaymentMode(), cmd.Amount(), 0, cmd.AmountPaid())
	if err != nil {
		return nil, err
	}

	id := kernel.NewUUID()
	now := time.Now()

	if cmd.Kind() == transaction.KindBillPayment {
		details, err := transaction.NewBillDetails(
			cmd.Bill().Operator, cmd.Bill().BillID, cmd.Bill().BillCustomerName)
		if err != nil {
			return nil, err
		}
		return transaction.NewBillPayment(id, customer, details, payment,
			cmd.Commission(), cmd.Description(), cmd.UploadID(), now)
	}

	details, err := transaction.NewTransferDetails(
		cmd.Transfer().TransferType, cmd.Transfer().UPIID, cmd.Transfer().BankName,
		cmd.Transfer().AccountNumber, cmd.Transfer().IFSCCode, cmd.Transfer().RecipientName)
	if err != nil {
		return nil, err
	}
	return transaction.NewMoneyTransfer(id, customer, details, payment,
		cmd.Commission(), cmd.Description(), cmd.UploadID(), now)
}
