package queries_test

import (
	"testing"

	"logistica/internal/core/application/usecases/queries"
	"logistica/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryStatsQuery(t *testing.T) {
	today, err := kernel.NewDay("2024-06-15")
	require.NoError(t, err)

	query, err := queries.NewGetDeliveryStatsQuery(today)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.Today().IsEqual(today))
}

func TestNewGetDeliveryStatsQuery_ZeroDay(t *testing.T) {
	_, err := queries.NewGetDeliveryStatsQuery(kernel.Day{})
	require.Error(t, err)
}

func TestGetDeliveryStatsQuery_Validate_NotConstructed(t *testing.T) {
	var zero queries.GetDeliveryStatsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetDeliveryStatsQueryIsNotConstructed)
}
