// Package services contains stateless domain services that operate across
// aggregates: the two-leg fee calculator, the courier assignment balancer and
// the route planner with its straight-line fallback.
package services
