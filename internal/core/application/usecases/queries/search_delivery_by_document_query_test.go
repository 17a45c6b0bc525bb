package queries_test

import (
	"testing"

	"logistica/internal/core/application/usecases/queries"
	"logistica/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchDeliveryByDocumentQuery(t *testing.T) {
	query, err := queries.NewSearchDeliveryByDocumentQuery("DOC1")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "DOC1", query.DocumentNumber())
}

func TestNewSearchDeliveryByDocumentQuery_EmptyDocument(t *testing.T) {
	_, err := queries.NewSearchDeliveryByDocumentQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewSearchDeliveryByDocumentQuery("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSearchDeliveryByDocumentQuery_Validate_NotConstructed(t *testing.T) {
	var zero queries.SearchDeliveryByDocumentQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrSearchDeliveryByDocumentQueryIsNotConstructed)
}
