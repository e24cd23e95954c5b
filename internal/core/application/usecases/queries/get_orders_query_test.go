package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_NoFilters_Succeeds(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(nil, nil, nil, nil)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.Status())
	assert.Nil(t, query.CustomerID())
	assert.Nil(t, query.PartnerID())
	assert.Nil(t, query.BranchID())
}

func TestNewGetOrdersQuery_AllFilters_Succeeds(t *testing.T) {
	status := order.Confirmed
	customerID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	query, err := queries.NewGetOrdersQuery(&status, &customerID, &partnerID, &branchID)

	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, order.Confirmed, *query.Status())
	require.NotNil(t, query.CustomerID())
	assert.True(t, query.CustomerID().IsEqual(customerID))
	require.NotNil(t, query.PartnerID())
	assert.True(t, query.PartnerID().IsEqual(partnerID))
	require.NotNil(t, query.BranchID())
	assert.True(t, query.BranchID().IsEqual(branchID))
}

func TestNewGetOrdersQuery_InvalidStatus_ReturnsError(t *testing.T) {
	invalidStatus := order.Status(42)

	_, err := queries.NewGetOrdersQuery(&invalidStatus, nil, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status is invalid")
}

func TestNewGetOrdersQuery_EmptyCustomerID_ReturnsError(t *testing.T) {
	var emptyID kernel.UUID

	_, err := queries.NewGetOrdersQuery(nil, &emptyID, nil, nil)

	require.Error(t, err)
}

func TestGetOrdersQuery_ZeroValue_FailsValidation(t *testing.T) {
	var query queries.GetOrdersQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
