package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTripHistoryQuery_Valid(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("should apply paging defaults", func(t *testing.T) {
		query, err := queries.NewGetTripHistoryQuery(driverID, 0, 0)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.DriverID().IsEqual(driverID))
		assert.Equal(t, queries.DefaultPage, query.Page())
		assert.Equal(t, queries.DefaultPageLimit, query.Limit())
	})

	t.Run("should keep explicit paging", func(t *testing.T) {
		query, err := queries.NewGetTripHistoryQuery(driverID, 2, 50)
		require.NoError(t, err)
		assert.Equal(t, 2, query.Page())
		assert.Equal(t, 50, query.Limit())
	})
}

func TestNewGetTripHistoryQuery_Invalid(t *testing.T) {
	t.Run("should reject empty driver id", func(t *testing.T) {
		_, err := queries.NewGetTripHistoryQuery(kernel.UUID{}, 1, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative page", func(t *testing.T) {
		_, err := queries.NewGetTripHistoryQuery(kernel.NewUUID(), -1, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative limit", func(t *testing.T) {
		_, err := queries.NewGetTripHistoryQuery(kernel.NewUUID(), 1, -5)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetTripHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTripHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTripHistoryQueryIsNotConstructed)
}
