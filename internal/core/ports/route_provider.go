package ports

import (
	"context"

	"kurir/internal/core/domain/model/kernel"
)

// RouteLeg is a routed segment between two points as measured by an external
// routing engine.
type RouteLeg struct {
	// DistanceMeters is the road distance of the leg.
	DistanceMeters int
	// DurationSeconds is the estimated driving time of the leg.
	DurationSeconds int
}

// RouteProvider measures road distance between two points.
//
// Implementations call an external routing engine and should return
// errs.DependencyUnavailableError when it cannot be reached, so callers can
// distinguish an outage from a bad request and fall back to an estimate.
type RouteProvider interface {
	GetDistance(ctx context.Context, from, to kernel.GeoPoint) (RouteLeg, error)
}
