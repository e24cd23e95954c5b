package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(52.52, 13.405)

		require.NoError(t, err)
		assert.InDelta(t, 52.52, point.Latitude(), 0.000001)
		assert.InDelta(t, 13.405, point.Longitude(), 0.000001)
		assert.NoError(t, point.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		corners := [][2]float64{
			{kernel.MinLatitude, kernel.MinLongitude},
			{kernel.MinLatitude, kernel.MaxLongitude},
			{kernel.MaxLatitude, kernel.MinLongitude},
			{kernel.MaxLatitude, kernel.MaxLongitude},
			{0, 0},
		}

		for _, corner := range corners {
			_, err := kernel.NewGeoPoint(corner[0], corner[1])
			assert.NoError(t, err)
		}
	})

	t.Run("should fail with latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(-90.1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, 180.1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(0, -180.1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should report both coordinate errors at once", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-91, 181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("should fail for zero value point", func(t *testing.T) {
		var point kernel.GeoPoint
		require.ErrorIs(t, point.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("should return true for identical coordinates", func(t *testing.T) {
		first, err := kernel.NewGeoPoint(52.52, 13.405)
		require.NoError(t, err)
		second, err := kernel.NewGeoPoint(52.52, 13.405)
		require.NoError(t, err)

		equal, err := first.IsEqual(second)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should return false for different coordinates", func(t *testing.T) {
		first, err := kernel.NewGeoPoint(52.52, 13.405)
		require.NoError(t, err)
		second, err := kernel.NewGeoPoint(48.8566, 2.3522)
		require.NoError(t, err)

		equal, err := first.IsEqual(second)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail when comparing with zero value", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(52.52, 13.405)
		require.NoError(t, err)

		_, err = point.IsEqual(kernel.GeoPoint{})
		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(52.52, 13.405)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(52.520000,13.405000)", point.String())
}
