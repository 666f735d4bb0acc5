package queries_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/stoprepo"
	"tracking/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetDelayedStopsQueryHandlerTestSuite verifies the raw-SQL delayed-stop
// read model against a real PostgreSQL instance.
type GetDelayedStopsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDelayedStopsQueryHandler
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&stoprepo.StopDTO{}, &stoprepo.FacilityDTO{}))
	suite.handler = queries.NewGetDelayedStopsQueryHandler(db)
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_stops, facilities").Error)

	facility := stoprepo.FacilityDTO{
		FacilityID:   "FAC-001",
		FacilityName: "Tokyo Hub",
		FacilityType: "hub",
		City:         "Tokyo",
		Region:       "Kanto",
	}
	suite.Require().NoError(suite.db.Create(&facility).Error)
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) seedStop(dto stoprepo.StopDTO) {
	dto.StopID = uuid.New()
	if dto.FacilityID == "" {
		dto.FacilityID = "FAC-001"
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) TestHandle_ListsOnlyOverdueStops() {
	asOf := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	overdue := asOf.Add(-time.Hour)
	upcoming := asOf.Add(time.Hour)
	arrived := asOf.Add(-30 * time.Minute)
	reason := "TRAFFIC"

	// Overdue: planned arrival passed, nothing recorded.
	suite.seedStop(stoprepo.StopDTO{
		OrderID:          "20250115-001",
		StopSequence:     2,
		PlannedArrivalAt: &overdue,
		DelayReasonCode:  &reason,
	})
	// Not overdue: planned arrival still ahead.
	suite.seedStop(stoprepo.StopDTO{
		OrderID:          "20250115-001",
		StopSequence:     3,
		PlannedArrivalAt: &upcoming,
	})
	// Not overdue: the shipment already arrived, however late.
	suite.seedStop(stoprepo.StopDTO{
		OrderID:          "20250115-002",
		StopSequence:     1,
		PlannedArrivalAt: &overdue,
		ActualArrivalAt:  &arrived,
	})
	// Not overdue: no schedule at all.
	suite.seedStop(stoprepo.StopDTO{
		OrderID:      "20250115-003",
		StopSequence: 1,
	})

	query, err := queries.NewGetDelayedStopsQuery(asOf)
	suite.Require().NoError(err)

	delayed, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(delayed, 1)
	suite.Equal("20250115-001", delayed[0].OrderID)
	suite.Equal(2, delayed[0].Sequence)
	suite.Equal("Tokyo Hub", delayed[0].FacilityName)
	suite.Equal("Tokyo", delayed[0].City)
	suite.Equal("TRAFFIC", delayed[0].DelayReasonCode)
	suite.True(overdue.Equal(delayed[0].PlannedArrivalAt))
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) TestHandle_StableOrdering() {
	asOf := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	overdue := asOf.Add(-time.Hour)

	suite.seedStop(stoprepo.StopDTO{OrderID: "20250115-002", StopSequence: 1, PlannedArrivalAt: &overdue})
	suite.seedStop(stoprepo.StopDTO{OrderID: "20250115-001", StopSequence: 2, PlannedArrivalAt: &overdue})
	suite.seedStop(stoprepo.StopDTO{OrderID: "20250115-001", StopSequence: 1, PlannedArrivalAt: &overdue})

	query, err := queries.NewGetDelayedStopsQuery(asOf)
	suite.Require().NoError(err)

	delayed, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(delayed, 3)
	suite.Equal("20250115-001", delayed[0].OrderID)
	suite.Equal(1, delayed[0].Sequence)
	suite.Equal("20250115-001", delayed[1].OrderID)
	suite.Equal(2, delayed[1].Sequence)
	suite.Equal("20250115-002", delayed[2].OrderID)
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	query, err := queries.NewGetDelayedStopsQuery(time.Now().UTC())
	suite.Require().NoError(err)

	delayed, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(delayed)
	suite.Empty(delayed)
}

func (suite *GetDelayedStopsQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	delayed, err := suite.handler.Handle(context.Background(), queries.GetDelayedStopsQuery{})

	suite.Require().Error(err)
	suite.Nil(delayed)
	suite.Contains(err.Error(), "must be created via NewGetDelayedStopsQuery constructor")
}

func TestGetDelayedStopsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDelayedStopsQueryHandlerTestSuite))
}
