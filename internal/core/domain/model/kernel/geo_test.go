package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		lat     float64
		wantErr bool
	}{
		{
			name: "valid point",
			lon:  77.5946,
			lat:  12.9716,
		},
		{
			name: "valid point at min bounds",
			lon:  kernel.LongitudeMin,
			lat:  kernel.LatitudeMin,
		},
		{
			name: "valid point at max bounds",
			lon:  kernel.LongitudeMax,
			lat:  kernel.LatitudeMax,
		},
		{
			name: "valid point at null island",
			lon:  0,
			lat:  0,
		},
		{
			name:    "longitude too small",
			lon:     -180.5,
			lat:     0,
			wantErr: true,
		},
		{
			name:    "longitude too large",
			lon:     181,
			lat:     0,
			wantErr: true,
		},
		{
			name:    "latitude too small",
			lon:     0,
			lat:     -90.1,
			wantErr: true,
		},
		{
			name:    "latitude too large",
			lon:     0,
			lat:     95,
			wantErr: true,
		},
		{
			name:    "both coordinates invalid",
			lon:     200,
			lat:     -95,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.lon, tt.lat)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, p)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.lon, p.Lon())
				assert.Equal(t, tt.lat, p.Lat())
				assert.NoError(t, p.Validate())
			}
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})

	t.Run("constructed point is valid", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(10, 20)

		require.NoError(t, err)
		assert.NoError(t, p.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(77.5946, 12.9716)
		p2, _ := kernel.NewGeoPoint(77.5946, 12.9716)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(77.5946, 12.9716)
		p2, _ := kernel.NewGeoPoint(72.8777, 19.0760)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed point returns error", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 10)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)

		assert.Error(t, err)
	})
}

func TestGeoPoint_DistanceMeters(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(77.5946, 12.9716)

		d, err := p.DistanceMeters(p)

		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("one degree of latitude is about 111.2 km", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(0, 0)
		p2, _ := kernel.NewGeoPoint(0, 1)

		d, err := p1.DistanceMeters(p2)

		require.NoError(t, err)
		assert.InDelta(t, 111195, d, 10)
	})

	t.Run("one degree of longitude at the equator is about 111.2 km", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(0, 0)
		p2, _ := kernel.NewGeoPoint(1, 0)

		d, err := p1.DistanceMeters(p2)

		require.NoError(t, err)
		assert.InDelta(t, 111195, d, 10)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(77.5946, 12.9716)
		p2, _ := kernel.NewGeoPoint(72.8777, 19.0760)

		d1, err := p1.DistanceMeters(p2)
		require.NoError(t, err)
		d2, err := p2.DistanceMeters(p1)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 0.001)
	})

	t.Run("bangalore to mumbai is about 845 km", func(t *testing.T) {
		bangalore, _ := kernel.NewGeoPoint(77.5946, 12.9716)
		mumbai, _ := kernel.NewGeoPoint(72.8777, 19.0760)

		d, err := bangalore.DistanceMeters(mumbai)

		require.NoError(t, err)
		assert.InDelta(t, 845000, d, 5000)
	})

	t.Run("unconstructed point returns error", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 10)
		var p2 kernel.GeoPoint

		_, err := p1.DistanceMeters(p2)

		assert.Error(t, err)
	})
}
