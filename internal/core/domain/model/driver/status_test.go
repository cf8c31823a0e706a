package driver_test

import (
	"testing"

	"freight/internal/core/domain/model/driver"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for all defined statuses", func(t *testing.T) {
		for _, s := range []driver.Status{driver.Offline, driver.Available, driver.OnTrip, driver.Maintenance} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		err := driver.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for out of range status", func(t *testing.T) {
		err := driver.Status(42).Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status driver.Status
		want   string
	}{
		{driver.Offline, "offline"},
		{driver.Available, "available"},
		{driver.OnTrip, "on_trip"},
		{driver.Maintenance, "maintenance"},
		{driver.Unknown, "unknown"},
		{driver.Status(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid strings", func(t *testing.T) {
		for _, want := range []driver.Status{driver.Offline, driver.Available, driver.OnTrip, driver.Maintenance} {
			got, err := driver.StatusFromString(want.String())

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "busy", "ON_TRIP"} {
			got, err := driver.StatusFromString(s)

			require.Error(t, err, s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, driver.Unknown, got)
		}
	})
}

func TestStatus_ChangeTo(t *testing.T) {
	t.Run("should allow activation from offline and maintenance", func(t *testing.T) {
		for _, from := range []driver.Status{driver.Offline, driver.Maintenance} {
			got, err := from.ChangeTo(driver.Available)

			require.NoError(t, err, from.String())
			assert.Equal(t, driver.Available, got)
		}
	})

	t.Run("should allow deactivation from any non-trip status", func(t *testing.T) {
		for _, from := range []driver.Status{driver.Offline, driver.Available, driver.Maintenance} {
			for _, to := range []driver.Status{driver.Offline, driver.Maintenance} {
				got, err := from.ChangeTo(to)

				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got)
			}
		}
	})

	t.Run("should treat same status as no-op", func(t *testing.T) {
		got, err := driver.Available.ChangeTo(driver.Available)

		require.NoError(t, err)
		assert.Equal(t, driver.Available, got)
	})

	t.Run("should reject leaving on_trip manually", func(t *testing.T) {
		for _, to := range []driver.Status{driver.Available, driver.Offline, driver.Maintenance} {
			_, err := driver.OnTrip.ChangeTo(to)

			require.Error(t, err, to.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})

	t.Run("should reject entering on_trip manually", func(t *testing.T) {
		for _, from := range []driver.Status{driver.Offline, driver.Available, driver.Maintenance} {
			_, err := from.ChangeTo(driver.OnTrip)

			require.Error(t, err, from.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := driver.Available.ChangeTo(driver.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_BeginTrip(t *testing.T) {
	t.Run("should transition available to on_trip", func(t *testing.T) {
		got, err := driver.Available.BeginTrip()

		require.NoError(t, err)
		assert.Equal(t, driver.OnTrip, got)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, from := range []driver.Status{driver.Offline, driver.OnTrip, driver.Maintenance, driver.Unknown} {
			_, err := from.BeginTrip()

			require.Error(t, err, from.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})
}

func TestStatus_FinishTrip(t *testing.T) {
	t.Run("should transition on_trip to available", func(t *testing.T) {
		got, err := driver.OnTrip.FinishTrip()

		require.NoError(t, err)
		assert.Equal(t, driver.Available, got)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, from := range []driver.Status{driver.Offline, driver.Available, driver.Maintenance, driver.Unknown} {
			_, err := from.FinishTrip()

			require.Error(t, err, from.String())
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		}
	})
}
