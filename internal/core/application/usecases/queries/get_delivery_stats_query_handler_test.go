package queries_test

import (
	"context"
	"testing"

	"logistica/internal/adapters/out/postgres/deliveryrepo"
	"logistica/internal/core/application/usecases/queries"
	"logistica/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/suite"
)

type GetDeliveryStatsQueryHandlerTestSuite struct {
	queryHandlerSuite
	handler queries.GetDeliveryStatsQueryHandler
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) SetupSuite() {
	suite.queryHandlerSuite.SetupSuite()
	suite.handler = queries.NewGetDeliveryStatsQueryHandler(suite.db)
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) statsFor(day string) queries.GetDeliveryStatsQueryResponse {
	query, err := queries.NewGetDeliveryStatsQuery(suite.day(day))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	result := suite.statsFor("2024-06-15")

	suite.Zero(result.Delayed.Count)
	suite.Empty(result.Delayed.Deliveries)
	suite.Zero(result.Unpaid.Count)
	suite.Zero(result.Unpaid.TotalAmount)
	suite.Empty(result.Unpaid.Deliveries)
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) TestHandle_DelayedBoundary_SameDayIsNotDelayed() {
	suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "TODAY"
		p.ScheduledDate = suite.day("2024-06-15")
		p.Status = delivery.Transito
	})
	yesterday := suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "LATE"
		p.ScheduledDate = suite.day("2024-06-14")
		p.Status = delivery.Transito
	})

	result := suite.statsFor("2024-06-15")

	suite.Require().Equal(1, result.Delayed.Count)
	suite.True(result.Delayed.Deliveries[0].ID.IsEqual(yesterday.ID()))
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) TestHandle_CompletedDeliveriesAreNeverDelayed() {
	suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "DONE"
		p.ScheduledDate = suite.day("2024-06-01")
		p.Status = delivery.Completado
	})
	late := suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "LATE"
		p.ScheduledDate = suite.day("2024-06-02")
		p.Status = delivery.Ausente
	})

	result := suite.statsFor("2024-06-15")

	suite.Require().Equal(1, result.Delayed.Count)
	suite.True(result.Delayed.Deliveries[0].ID.IsEqual(late.ID()))
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) TestHandle_DelayedOrderedByScheduledDateAscending() {
	second := suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "B"
		p.ScheduledDate = suite.day("2024-06-10")
	})
	first := suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "A"
		p.ScheduledDate = suite.day("2024-06-01")
	})

	result := suite.statsFor("2024-06-15")

	suite.Require().Equal(2, result.Delayed.Count)
	suite.True(result.Delayed.Deliveries[0].ID.IsEqual(first.ID()))
	suite.True(result.Delayed.Deliveries[1].ID.IsEqual(second.ID()))
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) TestHandle_UnpaidSumsExactlyPositiveOutstandingAmounts() {
	ten := 10.0
	fifteen := 15.0
	zero := 0.0

	suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "UNPAID-10"
		p.PaymentAmount = &ten
	})
	suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "UNPAID-15"
		p.PaymentAmount = &fifteen
	})
	// Paid, zero-amount and amountless deliveries never count as unpaid.
	suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "PAID"
		p.IsPaid = true
		p.PaymentAmount = &fifteen
	})
	suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "ZERO"
		p.PaymentAmount = &zero
	})
	suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "NO-AMOUNT"
	})

	result := suite.statsFor("2030-01-01")

	suite.Equal(2, result.Unpaid.Count)
	suite.InDelta(25.0, result.Unpaid.TotalAmount, 0.0001)
	suite.Len(result.Unpaid.Deliveries, 2)
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) TestHandle_CompletingADelayedDeliveryRemovesIt() {
	late := suite.saveDelivery(func(p *delivery.Params) {
		p.DocumentNumber = "LATE"
		p.ScheduledDate = suite.day("2024-06-14")
		p.Status = delivery.Transito
	})

	result := suite.statsFor("2024-06-15")
	suite.Require().Equal(1, result.Delayed.Count)

	late.Complete()
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db)
	err := repo.Update(context.Background(), late)
	suite.Require().NoError(err)

	result = suite.statsFor("2024-06-15")
	suite.Zero(result.Delayed.Count)
}

func (suite *GetDeliveryStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetDeliveryStatsQuery{})
	suite.Require().Error(err)
}

func TestGetDeliveryStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryStatsQueryHandlerTestSuite))
}
