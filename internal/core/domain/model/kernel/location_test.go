package kernel_test

import (
	"math"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	london = kernel.MustNewLocation(51.5074, -0.1278)
	paris  = kernel.MustNewLocation(48.8566, 2.3522)
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{name: "city centre", latitude: 40.7128, longitude: -74.0060},
		{name: "origin", latitude: 0, longitude: 0},
		{name: "south west corner", latitude: kernel.MinLatitude, longitude: kernel.MinLongitude},
		{name: "north east corner", latitude: kernel.MaxLatitude, longitude: kernel.MaxLongitude},
		{name: "latitude too small", latitude: -90.5, longitude: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "latitude too large", latitude: 91, longitude: 0, wantErr: errs.ErrValueIsOutOfRange},
		{name: "longitude too small", latitude: 0, longitude: -181, wantErr: errs.ErrValueIsOutOfRange},
		{name: "longitude too large", latitude: 0, longitude: 180.01, wantErr: errs.ErrValueIsOutOfRange},
		{name: "NaN latitude", latitude: math.NaN(), longitude: 0, wantErr: errs.ErrValueIsInvalid},
		{name: "infinite longitude", latitude: 0, longitude: math.Inf(1), wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, loc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, loc.Latitude())
			assert.Equal(t, tt.longitude, loc.Longitude())
			assert.NoError(t, loc.Validate())
		})
	}
}

func TestNewLocation_JoinsErrors(t *testing.T) {
	_, err := kernel.NewLocation(100, 200)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
	assert.Contains(t, err.Error(), "longitude")
}

func TestMustNewLocation_Panics(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewLocation(120, 0) })
}

func TestLocation_Validate(t *testing.T) {
	var zero kernel.Location

	assert.Equal(t, kernel.ErrLocationIsNotConstructed, zero.Validate())
	assert.NoError(t, london.Validate())
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "Location(51.507400,-0.127800)", london.String())
}

func TestLocation_IsEqual(t *testing.T) {
	same := kernel.MustNewLocation(51.5074, -0.1278)

	equal, err := london.IsEqual(same)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = london.IsEqual(paris)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = london.IsEqual(kernel.Location{})
	assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestLocation_DistanceTo(t *testing.T) {
	t.Run("london to paris", func(t *testing.T) {
		meters, err := london.DistanceTo(paris)

		require.NoError(t, err)
		assert.InDelta(t, 343_556, meters, 1_000)
	})

	t.Run("symmetric", func(t *testing.T) {
		there, _ := london.DistanceTo(paris)
		back, _ := paris.DistanceTo(london)

		assert.InDelta(t, there, back, 1e-6)
	})

	t.Run("same point", func(t *testing.T) {
		meters, err := paris.DistanceTo(paris)

		require.NoError(t, err)
		assert.Zero(t, meters)
	})

	t.Run("unconstructed", func(t *testing.T) {
		_, err := kernel.Location{}.DistanceTo(paris)

		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestLocation_StepTowards(t *testing.T) {
	start := kernel.MustNewLocation(0, 0)
	target := kernel.MustNewLocation(0, 0.01)
	total, _ := start.DistanceTo(target)

	t.Run("partial step", func(t *testing.T) {
		next, arrived, err := start.StepTowards(target, total/4)

		require.NoError(t, err)
		assert.False(t, arrived)
		assert.InDelta(t, 0.0025, next.Longitude(), 1e-9)
		assert.Zero(t, next.Latitude())

		remaining, _ := next.DistanceTo(target)
		assert.InDelta(t, total*3/4, remaining, 1)
	})

	t.Run("step reaches target", func(t *testing.T) {
		next, arrived, err := start.StepTowards(target, total+1)

		require.NoError(t, err)
		assert.True(t, arrived)
		assert.Equal(t, target, next)
	})

	t.Run("already there", func(t *testing.T) {
		next, arrived, err := target.StepTowards(target, 0)

		require.NoError(t, err)
		assert.True(t, arrived)
		assert.Equal(t, target, next)
	})

	t.Run("zero step stays", func(t *testing.T) {
		next, arrived, err := start.StepTowards(target, 0)

		require.NoError(t, err)
		assert.False(t, arrived)
		assert.Equal(t, start, next)
	})

	t.Run("unconstructed target", func(t *testing.T) {
		_, _, err := start.StepTowards(kernel.Location{}, 10)

		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}
