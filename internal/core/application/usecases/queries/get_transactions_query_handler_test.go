package queries_test

import (
	"context"
	"testing"
	"time"

	"studiodesk/internal/adapters/out/postgres/transactionrepo"
	"studiodesk/internal/core/application/usecases/queries"
	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/model/transaction"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetTransactionsQueryHandlerTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	handler         queries.GetTransactionsQueryHandler
	transactionRepo *transactionrepo.GormTransactionRepository
}

func (suite *GetTransactionsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&transactionrepo.TransactionDTO{}))

	suite.handler = queries.NewGetTransactionsQueryHandler(db)
	suite.transactionRepo = transactionrepo.NewGormTransactionRepository(db, mockAggregateTracker{})
}

func (suite *GetTransactionsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetTransactionsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE transactions").Error)
}

func (suite *GetTransactionsQueryHandlerTestSuite) TestHandle_OpenFilters_ReturnsAllNewestFirst() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	bill := suite.addBillPayment(now.Add(-2 * time.Hour))
	transfer := suite.addUPITransfer(now.Add(-time.Hour))

	query, err := queries.NewGetTransactionsQuery(
		transaction.KindUnknown, transaction.StatusUnknown, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(transfer.ID()))
	suite.True(result[1].ID.IsEqual(bill.ID()))
}

func (suite *GetTransactionsQueryHandlerTestSuite) TestHandle_KindFilter() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	bill := suite.addBillPayment(now.Add(-2 * time.Hour))
	suite.addUPITransfer(now.Add(-time.Hour))

	query, err := queries.NewGetTransactionsQuery(
		transaction.KindBillPayment, transaction.StatusUnknown, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(bill.ID()))
	suite.Equal("Bill Payment", result[0].Kind)
	suite.Equal("State Electricity / EB-104523", result[0].Destination)
}

func (suite *GetTransactionsQueryHandlerTestSuite) TestHandle_StatusFilter() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	bill := suite.addBillPayment(now.Add(-2 * time.Hour))
	done := suite.addBillPayment(now.Add(-time.Hour))

	suite.Require().NoError(done.TransitionTo(transaction.StatusDone, now))
	suite.Require().NoError(suite.transactionRepo.Update(context.Background(), done))

	query, err := queries.NewGetTransactionsQuery(
		transaction.KindUnknown, transaction.StatusPending, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(bill.ID()))
	suite.Equal("Pending", result[0].Status)
}

func (suite *GetTransactionsQueryHandlerTestSuite) TestHandle_DateRange() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.addBillPayment(now.Add(-72 * time.Hour))
	inRange := suite.addBillPayment(now.Add(-12 * time.Hour))

	from := now.Add(-24 * time.Hour)
	query, err := queries.NewGetTransactionsQuery(
		transaction.KindUnknown, transaction.StatusUnknown, &from, &now)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(inRange.ID()))
}

func (suite *GetTransactionsQueryHandlerTestSuite) TestHandle_UPIDestination() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.addUPITransfer(now.Add(-time.Hour))

	query, err := queries.NewGetTransactionsQuery(
		transaction.KindMoneyTransfer, transaction.StatusUnknown, nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ravi@upi", result[0].Destination)
	suite.InDelta(5000, result[0].Amount, 0.001)
	suite.InDelta(50, result[0].Commission, 0.001)
}

func (suite *GetTransactionsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetTransactionsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetTransactionsQueryHandlerTestSuite) addBillPayment(createdAt time.Time) *transaction.Transaction {
	customer, err := order.NewCustomer("cust-1", "Ravi", "")
	suite.Require().NoError(err)
	details, err := transaction.NewBillDetails("State Electricity", "EB-104523", "")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("Cash", 1200, 0, 1220)
	suite.Require().NoError(err)

	billPayment, err := transaction.NewBillPayment(kernel.NewUUID(), customer, details,
		payment, 20, "", "", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.transactionRepo.Add(context.Background(), billPayment))
	return billPayment
}

func (suite *GetTransactionsQueryHandlerTestSuite) addUPITransfer(createdAt time.Time) *transaction.Transaction {
	customer, err := order.NewCustomer("", "Ravi", "9000000001")
	suite.Require().NoError(err)
	details, err := transaction.NewTransferDetails(transaction.TransferTypeUPI,
		"ravi@upi", "", "", "", "")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("Cash", 5000, 0, 5050)
	suite.Require().NoError(err)

	transfer, err := transaction.NewMoneyTransfer(kernel.NewUUID(), customer, details,
		payment, 50, "", "", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.transactionRepo.Add(context.Background(), transfer))
	return transfer
}

func TestGetTransactionsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTransactionsQueryHandlerTestSuite))
}
