package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/services"
	"kurir/internal/core/ports"
	"kurir/internal/pkg/errs"
)

type MockRouteProvider struct{ mock.Mock }

func (m *MockRouteProvider) GetDistance(ctx context.Context, from, to kernel.GeoPoint) (ports.RouteLeg, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(ports.RouteLeg), args.Error(1)
}

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func Test_NewRoutePlanner(t *testing.T) {
	t.Run("should require a provider", func(t *testing.T) {
		_, err := services.NewRoutePlanner(nil, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func Test_RoutePlanner_PlanLegs(t *testing.T) {
	ctx := t.Context()
	basecamp := geoPoint(t, -6.2000, 106.8166)
	pickup := geoPoint(t, -6.2100, 106.8300)
	dropoff := geoPoint(t, -6.2250, 106.8450)

	t.Run("should use routed distances when the provider answers", func(t *testing.T) {
		provider := new(MockRouteProvider)
		mock.InOrder(
			provider.On("GetDistance", ctx, basecamp, pickup).
				Return(ports.RouteLeg{DistanceMeters: 2300, DurationSeconds: 420}, nil).Once(),
			provider.On("GetDistance", ctx, pickup, dropoff).
				Return(ports.RouteLeg{DistanceMeters: 3100, DurationSeconds: 560}, nil).Once(),
		)
		planner, err := services.NewRoutePlanner(provider, nil)
		require.NoError(t, err)

		legs, err := planner.PlanLegs(ctx, basecamp, pickup, dropoff)

		require.NoError(t, err)
		assert.InDelta(t, 2.3, legs.D1.DistanceKm, 1e-9)
		assert.Equal(t, 420, legs.D1.DurationSeconds)
		assert.False(t, legs.D1.Estimated)
		assert.InDelta(t, 3.1, legs.D2.DistanceKm, 1e-9)
		assert.Equal(t, 560, legs.D2.DurationSeconds)
		assert.False(t, legs.D2.Estimated)
		provider.AssertExpectations(t)
	})

	t.Run("should fall back to straight line when the provider is down", func(t *testing.T) {
		provider := new(MockRouteProvider)
		unavailable := errs.NewDependencyUnavailableError("osrm", errors.New("connection refused"))
		provider.On("GetDistance", ctx, mock.Anything, mock.Anything).
			Return(ports.RouteLeg{}, unavailable).Twice()
		planner, err := services.NewRoutePlanner(provider, nil)
		require.NoError(t, err)

		legs, err := planner.PlanLegs(ctx, basecamp, pickup, dropoff)

		require.NoError(t, err)
		assert.True(t, legs.D1.Estimated)
		assert.True(t, legs.D2.Estimated)
		assert.InDelta(t, basecamp.HaversineKm(pickup), legs.D1.DistanceKm, 1e-9)
		assert.InDelta(t, pickup.HaversineKm(dropoff), legs.D2.DistanceKm, 1e-9)
		assert.Greater(t, legs.D1.DurationSeconds, 0)
		provider.AssertExpectations(t)
	})

	t.Run("should degrade only the failed leg", func(t *testing.T) {
		provider := new(MockRouteProvider)
		mock.InOrder(
			provider.On("GetDistance", ctx, basecamp, pickup).
				Return(ports.RouteLeg{}, errs.NewDependencyUnavailableError("osrm", errors.New("timeout"))).Once(),
			provider.On("GetDistance", ctx, pickup, dropoff).
				Return(ports.RouteLeg{DistanceMeters: 3100, DurationSeconds: 560}, nil).Once(),
		)
		planner, err := services.NewRoutePlanner(provider, nil)
		require.NoError(t, err)

		legs, err := planner.PlanLegs(ctx, basecamp, pickup, dropoff)

		require.NoError(t, err)
		assert.True(t, legs.D1.Estimated)
		assert.False(t, legs.D2.Estimated)
		provider.AssertExpectations(t)
	})

	t.Run("should reject an invalid point before routing", func(t *testing.T) {
		provider := new(MockRouteProvider)
		planner, err := services.NewRoutePlanner(provider, nil)
		require.NoError(t, err)

		_, err = planner.PlanLegs(ctx, kernel.GeoPoint{}, pickup, dropoff)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		provider.AssertNotCalled(t, "GetDistance")
	})
}
