package transactionrepo_test

import (
	"context"
	"testing"
	"time"

	"studiodesk/internal/adapters/out/postgres/transactionrepo"
	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/model/transaction"
	"studiodesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TransactionRepositoryIntegrationTestSuite provides integration tests for
// TransactionRepository using PostgreSQL containers.
type TransactionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *transactionrepo.GormTransactionRepository
	tracker    *MockAggregateTracker
}

func (suite *TransactionRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&transactionrepo.TransactionDTO{}))
}

func (suite *TransactionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE transactions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = transactionrepo.NewGormTransactionRepository(suite.db, suite.tracker)
}

func (suite *TransactionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TransactionRepositoryIntegrationTestSuite) TestAdd_BillPayment_RoundTrips() {
	ctx := context.Background()

	billPayment := suite.createBillPayment()
	suite.tracker.On("TrackAggregate", billPayment.ID(), billPayment).Once()

	err := suite.repository.Add(ctx, billPayment)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, billPayment.ID())
	suite.Require().NoError(err)

	suite.Equal(transaction.KindBillPayment, retrieved.Kind())
	suite.Equal("State Electricity", retrieved.BillDetails().Operator())
	suite.Equal("EB-104523", retrieved.BillDetails().BillID())
	suite.Equal("Ravi", retrieved.Customer().Name())
	suite.InDelta(1200, retrieved.Payment().TotalAmount(), 0.001)
	suite.InDelta(20, retrieved.Commission(), 0.001)
	suite.Equal(transaction.StatusPending, retrieved.Status())
	suite.Require().Len(retrieved.StatusHistory(), 1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TransactionRepositoryIntegrationTestSuite) TestAdd_AccountTransfer_RoundTrips() {
	ctx := context.Background()

	customer, err := order.NewCustomer("", "Meena", "9000000002")
	suite.Require().NoError(err)
	details, err := transaction.NewTransferDetails(transaction.TransferTypeAccount,
		"", "State Bank", "3304001122", "SBIN0001234", "K. Meena")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("Cash", 5000, 0, 5050)
	suite.Require().NoError(err)

	transfer, err := transaction.NewMoneyTransfer(kernel.NewUUID(), customer, details,
		payment, 50, "monthly remittance", "", time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", transfer.ID(), transfer).Once()
	suite.Require().NoError(suite.repository.Add(ctx, transfer))

	retrieved, err := suite.repository.Get(ctx, transfer.ID())
	suite.Require().NoError(err)

	suite.Equal(transaction.KindMoneyTransfer, retrieved.Kind())
	suite.Equal(transaction.TransferTypeAccount, retrieved.TransferDetails().TransferType())
	suite.Equal("3304001122", retrieved.TransferDetails().AccountNumber())
	suite.Equal("SBIN0001234", retrieved.TransferDetails().IFSCCode())
	suite.Equal("K. Meena", retrieved.TransferDetails().RecipientName())
	suite.Equal("monthly remittance", retrieved.Description())
}

func (suite *TransactionRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TransactionRepositoryIntegrationTestSuite) TestUpdate_FailedThenRefunded_PersistsHistory() {
	ctx := context.Background()

	billPayment := suite.createBillPayment()
	suite.tracker.On("TrackAggregate", billPayment.ID(), billPayment).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, billPayment))

	at := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(billPayment.TransitionTo(transaction.StatusFailed, at))
	suite.Require().NoError(suite.repository.Update(ctx, billPayment))

	suite.Require().NoError(billPayment.TransitionTo(transaction.StatusRefunded, at.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, billPayment))

	retrieved, err := suite.repository.Get(ctx, billPayment.ID())
	suite.Require().NoError(err)
	suite.Equal(transaction.StatusRefunded, retrieved.Status())
	suite.Require().Len(retrieved.StatusHistory(), 3)
	suite.Equal(transaction.StatusFailed, retrieved.StatusHistory()[1].Status)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TransactionRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsError() {
	ctx := context.Background()

	billPayment := suite.createBillPayment()

	err := suite.repository.Update(ctx, billPayment)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TransactionRepositoryIntegrationTestSuite) TestDetachAgedReceipts() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	customer, err := order.NewCustomer("cust-1", "Ravi", "")
	suite.Require().NoError(err)
	details, err := transaction.NewBillDetails("State Electricity", "EB-104523", "")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("Cash", 1200, 0, 1220)
	suite.Require().NoError(err)

	aged, err := transaction.NewBillPayment(kernel.NewUUID(), customer, details,
		payment, 20, "", "receipt-aged", now.Add(-48*time.Hour))
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", aged.ID(), aged).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aged))
	suite.Require().NoError(aged.TransitionTo(transaction.StatusDone, now.Add(-47*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, aged))

	// Still pending, keeps its receipt regardless of age.
	pending, err := transaction.NewBillPayment(kernel.NewUUID(), customer, details,
		payment, 20, "", "receipt-pending", now.Add(-48*time.Hour))
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", pending.ID(), pending).Once()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	uploadIDs, err := suite.repository.DetachAgedReceipts(ctx, now.Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Equal([]string{"receipt-aged"}, uploadIDs)

	detached, err := suite.repository.Get(ctx, aged.ID())
	suite.Require().NoError(err)
	suite.Empty(detached.UploadID())

	kept, err := suite.repository.Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.Equal("receipt-pending", kept.UploadID())
}

func (suite *TransactionRepositoryIntegrationTestSuite) createBillPayment() *transaction.Transaction {
	customer, err := order.NewCustomer("cust-1", "Ravi", "")
	suite.Require().NoError(err)
	details, err := transaction.NewBillDetails("State Electricity", "EB-104523", "R. Ravi")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("Cash", 1200, 0, 1220)
	suite.Require().NoError(err)

	billPayment, err := transaction.NewBillPayment(kernel.NewUUID(), customer, details,
		payment, 20, "", "receipt-1", time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return billPayment
}

func TestTransactionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryIntegrationTestSuite))
}
