// Package http exposes the counter engine as a JSON API on echo. Request
// bodies are validated twice: go-playground/validator catches malformed
// payloads before any work happens, and the command constructors remain the
// authority on domain rules.
package http

import (
	"errors"
	"net/http"
	"time"

	"studiodesk/internal/core/application/usecases/commands"
	"studiodesk/internal/core/application/usecases/queries"
	"studiodesk/internal/core/domain/model/catalog"
	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/model/serviceorder"
	"studiodesk/internal/core/domain/model/transaction"
	"studiodesk/internal/core/ports"
	"studiodesk/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	composeOrderHandler          commands.ComposeOrderCommandHandler
	transitionOrderHandler       commands.TransitionOrderStatusCommandHandler
	createTransactionHandler     commands.CreateTransactionCommandHandler
	transitionTransactionHandler commands.TransitionTransactionStatusCommandHandler
	createServiceOrderHandler    commands.CreateServiceOrderCommandHandler
	completeServiceOrderHandler  commands.CompleteServiceOrderCommandHandler
	savePricingRuleHandler       commands.SavePricingRuleCommandHandler

	// Query handlers
	getPhotoOrdersHandler   queries.GetPhotoOrdersQueryHandler
	getTransactionsHandler  queries.GetTransactionsQueryHandler
	getServiceOrdersHandler queries.GetServiceOrdersQueryHandler

	// Direct ports for catalog configuration and file handling
	catalogRepo ports.CatalogRepository
	fileStore   ports.FileStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	composeOrderHandler commands.ComposeOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderStatusCommandHandler,
	createTransactionHandler commands.CreateTransactionCommandHandler,
	transitionTransactionHandler commands.TransitionTransactionStatusCommandHandler,
	createServiceOrderHandler commands.CreateServiceOrderCommandHandler,
	completeServiceOrderHandler commands.CompleteServiceOrderCommandHandler,
	savePricingRuleHandler commands.SavePricingRuleCommandHandler,
	getPhotoOrdersHandler queries.GetPhotoOrdersQueryHandler,
	getTransactionsHandler queries.GetTransactionsQueryHandler,
	getServiceOrdersHandler queries.GetServiceOrdersQueryHandler,
	catalogRepo ports.CatalogRepository,
	fileStore ports.FileStore,
) *Server {
	return &Server{
		composeOrderHandler:          composeOrderHandler,
		transitionOrderHandler:       transitionOrderHandler,
		createTransactionHandler:     createTransactionHandler,
		transitionTransactionHandler: transitionTransactionHandler,
		createServiceOrderHandler:    createServiceOrderHandler,
		completeServiceOrderHandler:  completeServiceOrderHandler,
		savePricingRuleHandler:       savePricingRuleHandler,
		getPhotoOrdersHandler:        getPhotoOrdersHandler,
		getTransactionsHandler:       getTransactionsHandler,
		getServiceOrdersHandler:      getServiceOrdersHandler,
		catalogRepo:                  catalogRepo,
		fileStore:                    fileStore,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")

	api.POST("/orders", s.ComposeOrder)
	api.PUT("/orders/:orderId", s.EditOrder)
	api.GET("/orders", s.GetPhotoOrders)
	api.POST("/orders/:orderId/advance", s.AdvanceOrderStatus)
	api.POST("/orders/:orderId/status", s.TransitionOrderStatus)

	api.POST("/transactions", s.CreateTransaction)
	api.GET("/transactions", s.GetTransactions)
	api.POST("/transactions/:transactionId/advance", s.AdvanceTransactionStatus)
	api.POST("/transactions/:transactionId/status", s.TransitionTransactionStatus)

	api.POST("/service-orders", s.CreateServiceOrder)
	api.GET("/service-orders", s.GetServiceOrders)
	api.POST("/service-orders/:serviceOrderId/complete", s.CompleteServiceOrder)

	api.GET("/catalog/items", s.GetCatalogItems)
	api.PUT("/catalog/items", s.SaveCatalogItem)
	api.GET("/catalog/addons", s.GetCatalogAddons)
	api.PUT("/catalog/addons", s.SaveCatalogAddon)
	api.GET("/catalog/rules", s.GetCatalogRules)
	api.PUT("/catalog/rules", s.SaveCatalogRule)

	api.POST("/files", s.UploadFile)
	api.GET("/files/:uploadId", s.GetFileURL)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ComposeOrder handles POST /api/v1/orders - composes a new photo order.
// The draft may be split into several orders; the ids come back in bucket
// order.
func (s *Server) ComposeOrder(ctx echo.Context) error {
	return s.composeOrder(ctx, kernel.UUID{}, http.StatusCreated)
}

// EditOrder handles PUT /api/v1/orders/{orderId} - re-saves an existing
// photo order, re-running the composition engine against the edited draft.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	return s.composeOrder(ctx, orderID, http.StatusOK)
}

func (s *Server) composeOrder(ctx echo.Context, originalOrderID kernel.UUID, successCode int) error {
	var request ComposeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	items := make([]commands.ComposeOrderItem, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.ComposeOrderItem{
			ItemType:  item.Type,
			Addons:    item.Addons,
			Quantity:  item.Quantity,
			IsInstant: item.IsInstant,
			GroupID:   item.GroupID,
		}
	}

	cmd, err := commands.NewComposeOrderCommand(
		originalOrderID,
		request.CustomerID,
		request.CustomerName,
		request.CustomerMobile,
		items,
		request.Description,
		request.PaymentMode,
		request.DiscountAmount,
		request.AmountPaid,
		request.UploadID,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orderIDs, err := s.composeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := ComposeOrderResponse{OrderIDs: make([]string, len(orderIDs))}
	for i, id := range orderIDs {
		response.OrderIDs[i] = id.String()
	}
	return ctx.JSON(successCode, response)
}

// GetPhotoOrders handles GET /api/v1/orders - lists photo orders for the
// dashboard, filtered by date range, free text and fulfillment class.
func (s *Server) GetPhotoOrders(ctx echo.Context) error {
	dateFrom, err := parseDateParam(ctx.QueryParam("dateFrom"))
	if err != nil {
		return badRequest(ctx, "Invalid dateFrom")
	}
	dateTo, err := parseDateParam(ctx.QueryParam("dateTo"))
	if err != nil {
		return badRequest(ctx, "Invalid dateTo")
	}
	instant, err := parseBoolParam(ctx.QueryParam("instant"))
	if err != nil {
		return badRequest(ctx, "Invalid instant flag")
	}
	regular, err := parseBoolParam(ctx.QueryParam("regular"))
	if err != nil {
		return badRequest(ctx, "Invalid regular flag")
	}

	query, err := queries.NewGetPhotoOrdersQuery(dateFrom, dateTo, ctx.QueryParam("search"), instant, regular)
	if err != nil {
		return errorJSON(ctx, err)
	}

	rows, err := s.getPhotoOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]PhotoOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = PhotoOrderResponse{
			ID:             row.ID.String(),
			CustomerID:     row.CustomerID,
			CustomerName:   row.CustomerName,
			CustomerMobile: row.CustomerMobile,
			Description:    row.Description,
			PaymentMode:    row.PaymentMode,
			TotalAmount:    row.TotalAmount,
			DiscountAmount: row.DiscountAmount,
			AmountPaid:     row.AmountPaid,
			DueAmount:      row.DueAmount,
			UploadID:       row.UploadID,
			IsInstant:      row.IsInstant,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/advance - applies
// the single forward transition for the order's current state. A terminal
// state is a no-op and returns the unchanged status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	status, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: status.String()})
}

// TransitionOrderStatus handles POST /api/v1/orders/{orderId}/status - moves
// the order to an explicitly chosen status. Rollbacks to Pending require
// rollbackConfirmed; without it the request fails with 409 and the current
// status, and nothing changes server-side.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request StatusTransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, target, request.RollbackConfirmed)
	if err != nil {
		return errorJSON(ctx, err)
	}

	status, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: status.String()})
}

// CreateTransaction handles POST /api/v1/transactions - records a bill
// payment or money transfer.
func (s *Server) CreateTransaction(ctx echo.Context) error {
	var request CreateTransactionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	kind, err := transaction.KindFromString(request.Kind)
	if err != nil {
		return errorJSON(ctx, err)
	}

	var transferType transaction.TransferType
	if kind == transaction.KindMoneyTransfer {
		transferType, err = transaction.TransferTypeFromString(request.Transfer.TransferType)
		if err != nil {
			return errorJSON(ctx, err)
		}
	}

	cmd, err := commands.NewCreateTransactionCommand(
		kind,
		request.CustomerID,
		request.CustomerName,
		request.CustomerMobile,
		commands.TransactionBillInput{
			Operator:         request.Bill.Operator,
			BillID:           request.Bill.BillID,
			BillCustomerName: request.Bill.CustomerName,
		},
		commands.TransactionTransferInput{
			TransferType:  transferType,
			UPIID:         request.Transfer.UPIID,
			BankName:      request.Transfer.BankName,
			AccountNumber: request.Transfer.AccountNumber,
			IFSCCode:      request.Transfer.IFSCCode,
			RecipientName: request.Transfer.RecipientName,
		},
		request.Amount,
		request.AmountPaid,
		request.Commission,
		request.PaymentMode,
		request.Description,
		request.UploadID,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	transactionID, err := s.createTransactionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateTransactionResponse{TransactionID: transactionID.String()})
}

// GetTransactions handles GET /api/v1/transactions - lists transactions for
// the dashboard, filtered by kind, status and date range.
func (s *Server) GetTransactions(ctx echo.Context) error {
	kind := transaction.KindUnknown
	if raw := ctx.QueryParam("kind"); raw != "" {
		parsed, err := transaction.KindFromString(raw)
		if err != nil {
			return errorJSON(ctx, err)
		}
		kind = parsed
	}

	status := transaction.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := transaction.StatusFromString(raw)
		if err != nil {
			return errorJSON(ctx, err)
		}
		status = parsed
	}

	dateFrom, err := parseDateParam(ctx.QueryParam("dateFrom"))
	if err != nil {
		return badRequest(ctx, "Invalid dateFrom")
	}
	dateTo, err := parseDateParam(ctx.QueryParam("dateTo"))
	if err != nil {
		return badRequest(ctx, "Invalid dateTo")
	}

	query, err := queries.NewGetTransactionsQuery(kind, status, dateFrom, dateTo)
	if err != nil {
		return errorJSON(ctx, err)
	}

	rows, err := s.getTransactionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]TransactionResponse, len(rows))
	for i, row := range rows {
		response[i] = TransactionResponse{
			ID:             row.ID.String(),
			Kind:           row.Kind,
			CustomerID:     row.CustomerID,
			CustomerName:   row.CustomerName,
			CustomerMobile: row.CustomerMobile,
			Destination:    row.Destination,
			Amount:         row.Amount,
			AmountPaid:     row.AmountPaid,
			Commission:     row.Commission,
			PaymentMode:    row.PaymentMode,
			Description:    row.Description,
			UploadID:       row.UploadID,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdvanceTransactionStatus handles POST /api/v1/transactions/{transactionId}/advance.
func (s *Server) AdvanceTransactionStatus(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("transactionId"))
	if err != nil {
		return badRequest(ctx, "Invalid transaction id")
	}

	cmd, err := commands.NewAdvanceTransactionStatusCommand(transactionID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	status, err := s.transitionTransactionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: status.String()})
}

// TransitionTransactionStatus handles POST /api/v1/transactions/{transactionId}/status.
// Failed transactions may move to Refunded; rollbacks to Pending are
// confirmation-gated the same way order rollbacks are.
func (s *Server) TransitionTransactionStatus(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("transactionId"))
	if err != nil {
		return badRequest(ctx, "Invalid transaction id")
	}

	var request StatusTransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	target, err := transaction.StatusFromString(request.Target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewTransitionTransactionStatusCommand(transactionID, target, request.RollbackConfirmed)
	if err != nil {
		return errorJSON(ctx, err)
	}

	status, err := s.transitionTransactionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StatusResponse{Status: status.String()})
}

// CreateServiceOrder handles POST /api/v1/service-orders - records a custom
// service order (lamination, framing, scanning and the like).
func (s *Server) CreateServiceOrder(ctx echo.Context) error {
	var request CreateServiceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateServiceOrderCommand(
		request.CustomerID,
		request.CustomerName,
		request.CustomerMobile,
		request.ServiceName,
		request.Amount,
		request.AmountPaid,
		request.PaymentMode,
		request.Description,
		request.UploadIDs,
	)
	if err != nil {
		return errorJSON(ctx, err)
	}

	serviceOrderID, err := s.createServiceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateServiceOrderResponse{ServiceOrderID: serviceOrderID.String()})
}

// GetServiceOrders handles GET /api/v1/service-orders - lists service orders
// filtered by status and date range.
func (s *Server) GetServiceOrders(ctx echo.Context) error {
	status := serviceorder.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := serviceorder.StatusFromString(raw)
		if err != nil {
			return errorJSON(ctx, err)
		}
		status = parsed
	}

	dateFrom, err := parseDateParam(ctx.QueryParam("dateFrom"))
	if err != nil {
		return badRequest(ctx, "Invalid dateFrom")
	}
	dateTo, err := parseDateParam(ctx.QueryParam("dateTo"))
	if err != nil {
		return badRequest(ctx, "Invalid dateTo")
	}

	query, err := queries.NewGetServiceOrdersQuery(status, dateFrom, dateTo)
	if err != nil {
		return errorJSON(ctx, err)
	}

	rows, err := s.getServiceOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ServiceOrderResponse, len(rows))
	for i, row := range rows {
		response[i] = ServiceOrderResponse{
			ID:             row.ID.String(),
			CustomerID:     row.CustomerID,
			CustomerName:   row.CustomerName,
			CustomerMobile: row.CustomerMobile,
			ServiceName:    row.ServiceName,
			Amount:         row.Amount,
			Description:    row.Description,
			PaymentMode:    row.PaymentMode,
			TotalAmount:    row.TotalAmount,
			DiscountAmount: row.DiscountAmount,
			AmountPaid:     row.AmountPaid,
			DueAmount:      row.DueAmount,
			UploadIDs:      row.UploadIDs,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CompleteServiceOrder handles POST /api/v1/service-orders/{serviceOrderId}/complete.
func (s *Server) CompleteServiceOrder(ctx echo.Context) error {
	serviceOrderID, err := kernel.UUIDFromString(ctx.Param("serviceOrderId"))
	if err != nil {
		return badRequest(ctx, "Invalid service order id")
	}

	cmd, err := commands.NewCompleteServiceOrderCommand(serviceOrderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.completeServiceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCatalogItems handles GET /api/v1/catalog/items.
func (s *Server) GetCatalogItems(ctx echo.Context) error {
	items, err := s.catalogRepo.GetItems(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]CatalogItemResponse, len(items))
	for i, item := range items {
		response[i] = CatalogItemResponse{
			Name:                 item.Name(),
			RegularBasePrice:     item.Price(false, catalog.TierBase),
			RegularCustomerPrice: item.Price(false, catalog.TierCustomer),
			InstantBasePrice:     item.Price(true, catalog.TierBase),
			InstantCustomerPrice: item.Price(true, catalog.TierCustomer),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SaveCatalogItem handles PUT /api/v1/catalog/items - upserts a printable
// item with its four reference prices.
func (s *Server) SaveCatalogItem(ctx echo.Context) error {
	var request SaveItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	item, err := catalog.NewItem(request.Name, request.RegularBasePrice,
		request.RegularCustomerPrice, request.InstantBasePrice, request.InstantCustomerPrice)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.catalogRepo.SaveItem(ctx.Request().Context(), item); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCatalogAddons handles GET /api/v1/catalog/addons.
func (s *Server) GetCatalogAddons(ctx echo.Context) error {
	addons, err := s.catalogRepo.GetAddons(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}

	names := make([]string, len(addons))
	for i, addon := range addons {
		names[i] = addon.Name()
	}
	return ctx.JSON(http.StatusOK, names)
}

// SaveCatalogAddon handles PUT /api/v1/catalog/addons - registers an addon name.
func (s *Server) SaveCatalogAddon(ctx echo.Context) error {
	var request SaveAddonRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	addon, err := catalog.NewAddon(request.Name)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.catalogRepo.SaveAddon(ctx.Request().Context(), addon); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCatalogRules handles GET /api/v1/catalog/rules.
func (s *Server) GetCatalogRules(ctx echo.Context) error {
	rules, err := s.catalogRepo.GetPricingRules(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]CatalogRuleResponse, len(rules))
	for i, rule := range rules {
		response[i] = CatalogRuleResponse{
			Item:          rule.Item(),
			Addons:        rule.Addons(),
			BasePrice:     rule.Price(catalog.TierBase),
			CustomerPrice: rule.Price(catalog.TierCustomer),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SaveCatalogRule handles PUT /api/v1/catalog/rules - upserts a combination
// pricing rule. The addon list is order-insensitive.
func (s *Server) SaveCatalogRule(ctx echo.Context) error {
	var request SavePricingRuleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSavePricingRuleCommand(request.Item, request.Addons,
		request.BasePrice, request.CustomerPrice)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.savePricingRuleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UploadFile handles POST /api/v1/files - stores a customer upload and
// returns its opaque id with a retrievable URL.
func (s *Server) UploadFile(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "Missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "Unreadable file")
	}
	defer src.Close()

	uploadID, err := s.fileStore.Upload(ctx.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return errorJSON(ctx, err)
	}

	url, err := s.fileStore.ResolveURL(ctx.Request().Context(), uploadID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, UploadResponse{UploadID: uploadID, URL: url})
}

// GetFileURL handles GET /api/v1/files/{uploadId} - resolves an upload id
// into a retrievable URL.
func (s *Server) GetFileURL(ctx echo.Context) error {
	uploadID := ctx.Param("uploadId")

	url, err := s.fileStore.ResolveURL(ctx.Request().Context(), uploadID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	return ctx.JSON(http.StatusOK, FileURLResponse{URL: url})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON maps an application error onto the API error contract. Conflicts
// (409) cover both the rollback-confirmation gate and concurrent transitions
// on the same record; domain validation failures map to 422.
func errorJSON(ctx echo.Context, err error) error {
	var rollbackErr *commands.RollbackConfirmationRequiredError
	var notFoundErr *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &rollbackErr):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:          http.StatusConflict,
			Message:       rollbackErr.Error(),
			CurrentStatus: rollbackErr.CurrentStatus,
		})
	case errors.Is(err, commands.ErrTransitionInFlight):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// parseDateParam accepts RFC 3339 timestamps and bare dates.
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseBoolParam returns nil for an absent flag, keeping it tri-state.
func parseBoolParam(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	switch raw {
	case "true", "1":
		value := true
		return &value, nil
	case "false", "0":
		value := false
		return &value, nil
	}
	return nil, errs.NewValueIsInvalidError("flag")
}
