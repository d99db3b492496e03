package queries_test

import (
	"testing"

	"linenflow/internal/core/application/usecases/queries"
	"linenflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPickupProjectionQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetPickupProjectionQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetPickupProjectionQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetPickupProjectionQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetPickupProjectionQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetPickupProjectionQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPickupProjectionQueryIsNotConstructed)
}
