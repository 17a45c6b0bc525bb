package queries_test

import (
	"context"
	"time"

	"logistica/internal/adapters/out/postgres/deliveryrepo"
	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// queryHandlerSuite is the shared fixture for query handler integration
// tests: a PostgreSQL container with the deliveries table migrated, truncated
// before each test.
type queryHandlerSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
}

func (s *queryHandlerSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	s.Require().NoError(err)
}

func (s *queryHandlerSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *queryHandlerSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE deliveries").Error
	s.Require().NoError(err)
}

func (s *queryHandlerSuite) day(value string) kernel.Day {
	day, err := kernel.NewDay(value)
	s.Require().NoError(err)
	return day
}

func (s *queryHandlerSuite) timeOfDay(value string) kernel.TimeOfDay {
	timeOfDay, err := kernel.NewTimeOfDay(value)
	s.Require().NoError(err)
	return timeOfDay
}

// saveDelivery persists a delivery built from sensible defaults, letting the
// caller override individual fields before construction.
func (s *queryHandlerSuite) saveDelivery(modify func(*delivery.Params)) *delivery.Delivery {
	params := delivery.Params{
		Address:        "Main St 1",
		Material:       "Sofa",
		DocumentNumber: "DOC1",
		Transporter:    "Joe",
		ScheduledDate:  s.day("2024-01-01"),
		ScheduledTime:  s.timeOfDay("10:00"),
		CustomerPhone:  "555",
	}
	if modify != nil {
		modify(&params)
	}

	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), params)
	s.Require().NoError(err)

	repo := deliveryrepo.NewGormDeliveryRepository(s.db)
	err = repo.Add(context.Background(), aggregate)
	s.Require().NoError(err)

	return aggregate
}
