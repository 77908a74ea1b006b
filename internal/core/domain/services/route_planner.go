package services

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/ports"
	"kurir/internal/pkg/errs"
)

// fallbackSpeedKmh is the assumed average road speed when a leg's duration
// has to be estimated instead of measured.
const fallbackSpeedKmh = 30.0

// PlannedLeg is one leg of a job with its resolved distance and duration.
// Estimated is true when the routing engine was unavailable and the numbers
// come from the straight-line fallback.
type PlannedLeg struct {
	DistanceKm      float64
	DurationSeconds int
	Estimated       bool
}

// PlannedLegs holds both legs of a job: basecamp to pickup (D1) and pickup
// to dropoff (D2).
type PlannedLegs struct {
	D1 PlannedLeg
	D2 PlannedLeg
}

// RoutePlanner resolves the two legs of a job through a routing engine,
// falling back to the haversine distance per leg when the engine is down.
// An outage therefore degrades quote accuracy but never blocks order intake.
type RoutePlanner struct {
	provider ports.RouteProvider
	log      *slog.Logger
}

// NewRoutePlanner creates a planner over the given routing provider.
// A nil logger falls back to slog.Default.
func NewRoutePlanner(provider ports.RouteProvider, log *slog.Logger) (RoutePlanner, error) {
	if provider == nil {
		return RoutePlanner{}, errs.NewValueIsRequiredError("provider")
	}
	if log == nil {
		log = slog.Default()
	}
	return RoutePlanner{
		provider: provider,
		log:      log.With("component", "route_planner"),
	}, nil
}

// PlanLegs resolves both legs of a job. Each leg is resolved independently,
// so a single failed routing call only degrades that leg.
func (p RoutePlanner) PlanLegs(ctx context.Context, basecamp, pickup, dropoff kernel.GeoPoint) (PlannedLegs, error) {
	if p.provider == nil {
		return PlannedLegs{}, errs.NewValueIsRequiredError("provider")
	}
	for _, point := range []struct {
		name  string
		value kernel.GeoPoint
	}{
		{"basecamp", basecamp},
		{"pickup", pickup},
		{"dropoff", dropoff},
	} {
		if err := point.value.Validate(); err != nil {
			return PlannedLegs{}, errs.NewValueIsInvalidErrorWithCause(point.name, err)
		}
	}

	return PlannedLegs{
		D1: p.planLeg(ctx, "d1", basecamp, pickup),
		D2: p.planLeg(ctx, "d2", pickup, dropoff),
	}, nil
}

func (p RoutePlanner) planLeg(ctx context.Context, leg string, from, to kernel.GeoPoint) PlannedLeg {
	routed, err := p.provider.GetDistance(ctx, from, to)
	if err == nil {
		return PlannedLeg{
			DistanceKm:      float64(routed.DistanceMeters) / 1000.0,
			DurationSeconds: routed.DurationSeconds,
		}
	}

	if !errors.Is(err, errs.ErrDependencyUnavailable) {
		p.log.Warn("routing request rejected, estimating leg", "leg", leg, "error", err)
	} else {
		p.log.Warn("routing engine unavailable, estimating leg", "leg", leg, "error", err)
	}

	distanceKm := from.HaversineKm(to)
	return PlannedLeg{
		DistanceKm:      distanceKm,
		DurationSeconds: int(math.Round(distanceKm / fallbackSpeedKmh * 3600)),
		Estimated:       true,
	}
}
