package http

import "time"

// ErrorResponse is the JSON payload returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// CurrentStatus is set on rollback-confirmation conflicts so the client
	// can show the status the record would be rolled back from.
	CurrentStatus string `json:"currentStatus,omitempty"`
}

// ComposeOrderItemRequest is one line item row of a compose request.
type ComposeOrderItemRequest struct {
	Type      string   `json:"type" validate:"required"`
	Addons    []string `json:"addons"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	IsInstant bool     `json:"isInstant"`
	GroupID   int      `json:"groupId" validate:"gte=0"`
}

// ComposeOrderRequest creates or re-saves a photo order. The engine may
// split the draft; the response lists the persisted order ids in bucket order.
type ComposeOrderRequest struct {
	CustomerID     string                    `json:"customerId"`
	CustomerName   string                    `json:"customerName" validate:"required"`
	CustomerMobile string                    `json:"customerMobile"`
	Items          []ComposeOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Description    string                    `json:"description"`
	PaymentMode    string                    `json:"paymentMode" validate:"required"`
	DiscountAmount float64                   `json:"discountAmount" validate:"gte=0"`
	AmountPaid     float64                   `json:"amountPaid" validate:"gte=0"`
	UploadID       string                    `json:"uploadId"`
}

// ComposeOrderResponse carries the persisted order ids in bucket order.
type ComposeOrderResponse struct {
	OrderIDs []string `json:"orderIds"`
}

// StatusTransitionRequest moves a record to an explicitly chosen status.
type StatusTransitionRequest struct {
	Target            string `json:"target" validate:"required"`
	RollbackConfirmed bool   `json:"rollbackConfirmed"`
}

// StatusResponse reports a record's status after a transition request.
type StatusResponse struct {
	Status string `json:"status"`
}

// TransactionBillRequest carries the bill payment fields of a create request.
type TransactionBillRequest struct {
	Operator     string `json:"operator"`
	BillID       string `json:"billId"`
	CustomerName string `json:"customerName"`
}

// TransactionTransferRequest carries the money transfer fields of a create
// request.
type TransactionTransferRequest struct {
	TransferType  string `json:"transferType"`
	UPIID         string `json:"upiId"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	RecipientName string `json:"recipientName"`
}

// CreateTransactionRequest records a bill payment or money transfer.
// Only the detail block matching the kind is read.
type CreateTransactionRequest struct {
	Kind           string                     `json:"kind" validate:"required"`
	CustomerID     string                     `json:"customerId"`
	CustomerName   string                     `json:"customerName" validate:"required"`
	CustomerMobile string                     `json:"customerMobile"`
	Bill           TransactionBillRequest     `json:"bill"`
	Transfer       TransactionTransferRequest `json:"transfer"`
	Amount         float64                    `json:"amount" validate:"gt=0"`
	AmountPaid     float64                    `json:"amountPaid" validate:"gte=0"`
	Commission     float64                    `json:"commission" validate:"gte=0"`
	PaymentMode    string                     `json:"paymentMode" validate:"required"`
	Description    string                     `json:"description"`
	UploadID       string                     `json:"uploadId"`
}

// CreateTransactionResponse carries the id of the recorded transaction.
type CreateTransactionResponse struct {
	TransactionID string `json:"transactionId"`
}

// CreateServiceOrderRequest records a custom service order.
type CreateServiceOrderRequest struct {
	CustomerID     string   `json:"customerId"`
	CustomerName   string   `json:"customerName" validate:"required"`
	CustomerMobile string   `json:"customerMobile"`
	ServiceName    string   `json:"serviceName" validate:"required"`
	Amount         float64  `json:"amount" validate:"gt=0"`
	AmountPaid     float64  `json:"amountPaid" validate:"gte=0"`
	PaymentMode    string   `json:"paymentMode" validate:"required"`
	Description    string   `json:"description"`
	UploadIDs      []string `json:"uploadIds"`
}

// CreateServiceOrderResponse carries the id of the recorded service order.
type CreateServiceOrderResponse struct {
	ServiceOrderID string `json:"serviceOrderId"`
}

// SaveItemRequest upserts a printable item with its four reference prices.
type SaveItemRequest struct {
	Name                 string  `json:"name" validate:"required"`
	RegularBasePrice     float64 `json:"regularBasePrice" validate:"gte=0"`
	RegularCustomerPrice float64 `json:"regularCustomerPrice" validate:"gte=0"`
	InstantBasePrice     float64 `json:"instantBasePrice" validate:"gte=0"`
	InstantCustomerPrice float64 `json:"instantCustomerPrice" validate:"gte=0"`
}

// SaveAddonRequest registers an addon name.
type SaveAddonRequest struct {
	Name string `json:"name" validate:"required"`
}

// SavePricingRuleRequest upserts a combination pricing rule. The addon list
// is order-insensitive.
type SavePricingRuleRequest struct {
	Item          string   `json:"item" validate:"required"`
	Addons        []string `json:"addons" validate:"required,min=1"`
	BasePrice     float64  `json:"basePrice" validate:"gte=0"`
	CustomerPrice float64  `json:"customerPrice" validate:"gte=0"`
}

// CatalogItemResponse is one printable item with its reference prices.
type CatalogItemResponse struct {
	Name                 string  `json:"name"`
	RegularBasePrice     float64 `json:"regularBasePrice"`
	RegularCustomerPrice float64 `json:"regularCustomerPrice"`
	InstantBasePrice     float64 `json:"instantBasePrice"`
	InstantCustomerPrice float64 `json:"instantCustomerPrice"`
}

// CatalogRuleResponse is one combination pricing rule.
type CatalogRuleResponse struct {
	Item          string   `json:"item"`
	Addons        []string `json:"addons"`
	BasePrice     float64  `json:"basePrice"`
	CustomerPrice float64  `json:"customerPrice"`
}

// PhotoOrderResponse is one dashboard row of the photo order listing.
type PhotoOrderResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	CustomerMobile string    `json:"customerMobile"`
	Description    string    `json:"description"`
	PaymentMode    string    `json:"paymentMode"`
	TotalAmount    float64   `json:"totalAmount"`
	DiscountAmount float64   `json:"discountAmount"`
	AmountPaid     float64   `json:"amountPaid"`
	DueAmount      float64   `json:"dueAmount"`
	UploadID       string    `json:"uploadId,omitempty"`
	IsInstant      bool      `json:"isInstant"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TransactionResponse is one dashboard row of the transaction listing.
type TransactionResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	CustomerID     string    `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	CustomerMobile string    `json:"customerMobile"`
	Destination    string    `json:"destination"`
	Amount         float64   `json:"amount"`
	AmountPaid     float64   `json:"amountPaid"`
	Commission     float64   `json:"commission"`
	PaymentMode    string    `json:"paymentMode"`
	Description    string    `json:"description"`
	UploadID       string    `json:"uploadId,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ServiceOrderResponse is one dashboard row of the service order listing.
type ServiceOrderResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	CustomerMobile string    `json:"customerMobile"`
	ServiceName    string    `json:"serviceName"`
	Amount         float64   `json:"amount"`
	Description    string    `json:"description"`
	PaymentMode    string    `json:"paymentMode"`
	TotalAmount    float64   `json:"totalAmount"`
	DiscountAmount float64   `json:"discountAmount"`
	AmountPaid     float64   `json:"amountPaid"`
	DueAmount      float64   `json:"dueAmount"`
	UploadIDs      []string  `json:"uploadIds"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UploadResponse reports a stored file's opaque id and a retrievable URL.
type UploadResponse struct {
	UploadID string `json:"uploadId"`
	URL      string `json:"url"`
}

// FileURLResponse resolves an upload id into a retrievable URL.
type FileURLResponse struct {
	URL string `json:"url"`
}
