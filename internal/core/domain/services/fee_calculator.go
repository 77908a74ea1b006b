package services

import (
	"errors"
	"fmt"
	"math"

	"kurir/internal/pkg/errs"
	"kurir/internal/pkg/guard"
)

// ErrTariffIsNotConstructed is returned when using an improperly initialized Tariff.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")

// Tariff holds the pricing constants for the two-leg fee calculation.
// The constants are configuration, not business rules: deployments tune them
// without code changes. All amounts are integer rupiah.
type Tariff struct {
	// minimumFee is the flat per-leg floor, charged up to baseKm.
	minimumFee int64
	// baseKm is the distance covered by the minimum fee.
	baseKm float64
	// ratePerKm is charged for every kilometer beyond baseKm.
	ratePerKm int64
	// roundTo is the currency increment the excess charge is rounded up to.
	roundTo int64
	// expressSurcharge is added once per order for the express tier.
	expressSurcharge int64

	guard guard.ConstructorGuard
}

// NewTariff creates a validated tariff.
func NewTariff(minimumFee int64, baseKm float64, ratePerKm, roundTo, expressSurcharge int64) (Tariff, error) {
	if minimumFee <= 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause(
			"minimum fee", fmt.Errorf("%d is not greater than 0", minimumFee))
	}
	if baseKm < 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause(
			"base distance", fmt.Errorf("%f is negative", baseKm))
	}
	if ratePerKm <= 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause(
			"rate per km", fmt.Errorf("%d is not greater than 0", ratePerKm))
	}
	if roundTo <= 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause(
			"rounding increment", fmt.Errorf("%d is not greater than 0", roundTo))
	}
	if expressSurcharge < 0 {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause(
			"express surcharge", fmt.Errorf("%d is negative", expressSurcharge))
	}

	return Tariff{
		minimumFee:       minimumFee,
		baseKm:           baseKm,
		ratePerKm:        ratePerKm,
		roundTo:          roundTo,
		expressSurcharge: expressSurcharge,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Tariff was created through its constructor.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// MinimumFee returns the per-leg fee floor, which is also the minimum
// acceptable ongkir for a created order.
func (t Tariff) MinimumFee() int64 {
	return t.minimumFee
}

// FeeBreakdown is the result of pricing the two legs of a job.
// Subtotal is D1Fee + D2Fee; Total adds the express surcharge.
type FeeBreakdown struct {
	D1Fee      int64
	D2Fee      int64
	ExpressFee int64
	Subtotal   int64
	Total      int64
}

// FeeCalculator prices the two legs of a job: basecamp to pickup (D1) and
// pickup to dropoff (D2). It is a pure function of its inputs and the tariff.
type FeeCalculator struct {
	tariff Tariff
}

// NewFeeCalculator creates a calculator for the given tariff.
func NewFeeCalculator(tariff Tariff) (FeeCalculator, error) {
	if err := tariff.Validate(); err != nil {
		return FeeCalculator{}, err
	}
	return FeeCalculator{tariff: tariff}, nil
}

// Tariff returns the tariff this calculator prices with.
func (f FeeCalculator) Tariff() Tariff {
	return f.tariff
}

// Calculate prices the two legs and applies the express surcharge.
//
// Each leg is priced independently: the minimum fee covers baseKm, and every
// kilometer beyond it is charged at ratePerKm, the excess rounded up to the
// configured currency increment. A distance of exactly 0 is valid (pickup at
// the basecamp). Negative distances are a programmer error and are rejected
// before any computation.
func (f FeeCalculator) Calculate(d1Km, d2Km float64, express bool) (FeeBreakdown, error) {
	if err := f.tariff.Validate(); err != nil {
		return FeeBreakdown{}, err
	}
	if d1Km < 0 || math.IsNaN(d1Km) {
		return FeeBreakdown{}, errs.NewValueIsOutOfRangeError("d1Km", d1Km, 0, "unbounded")
	}
	if d2Km < 0 || math.IsNaN(d2Km) {
		return FeeBreakdown{}, errs.NewValueIsOutOfRangeError("d2Km", d2Km, 0, "unbounded")
	}

	breakdown := FeeBreakdown{
		D1Fee: f.legFee(d1Km),
		D2Fee: f.legFee(d2Km),
	}
	if express {
		breakdown.ExpressFee = f.tariff.expressSurcharge
	}

	breakdown.Subtotal = breakdown.D1Fee + breakdown.D2Fee
	breakdown.Total = breakdown.Subtotal + breakdown.ExpressFee
	return breakdown, nil
}

// legFee prices a single leg. The excess charge is first rounded to the
// nearest rupiah to shed float noise, then rounded up to the increment, so a
// leg fee never drops below the minimum.
func (f FeeCalculator) legFee(distanceKm float64) int64 {
	if distanceKm <= f.tariff.baseKm {
		return f.tariff.minimumFee
	}

	excessKm := distanceKm - f.tariff.baseKm
	excess := int64(math.Round(excessKm * float64(f.tariff.ratePerKm)))
	if excess == 0 {
		return f.tariff.minimumFee
	}

	increments := (excess + f.tariff.roundTo - 1) / f.tariff.roundTo
	return f.tariff.minimumFee + increments*f.tariff.roundTo
}
