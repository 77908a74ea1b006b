package order

import (
	"fmt"

	"kurir/internal/pkg/errs"
)

// Kind classifies what kind of job the order is.
type Kind int

const (
	KindUnknown Kind = iota
	// KindGoods is plain goods delivery.
	KindGoods
	// KindPickupErrand is a pickup errand without purchase.
	KindPickupErrand
	// KindPurchase is purchase-on-behalf, typically paired with dana talangan.
	KindPurchase
	// KindDocument is document delivery.
	KindDocument
	// KindOther covers everything else.
	KindOther
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindGoods:        "GOODS",
		KindPickupErrand: "PICKUP_ERRAND",
		KindPurchase:     "PURCHASE",
		KindDocument:     "DOCUMENT",
		KindOther:        "OTHER",
	}
}

// KindFromString parses the wire representation of an order kind.
func KindFromString(s string) (Kind, error) {
	for k, str := range getKindStrings() {
		if str == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order kind", fmt.Errorf("%q is not a valid order kind", s))
}

// Validate checks the kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order kind", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// ServiceTier selects the delivery priority.
type ServiceTier int

const (
	TierUnknown ServiceTier = iota
	// TierRegular is the default tier.
	TierRegular
	// TierExpress adds a fixed priority surcharge, independent of distance.
	TierExpress
)

func getTierStrings() map[ServiceTier]string {
	return map[ServiceTier]string{
		TierRegular: "REGULAR",
		TierExpress: "EXPRESS",
	}
}

// TierFromString parses the wire representation of a service tier.
func TierFromString(s string) (ServiceTier, error) {
	for t, str := range getTierStrings() {
		if str == s {
			return t, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service tier", fmt.Errorf("%q is not a valid service tier", s))
}

// Validate checks the tier is one of the defined values.
func (t ServiceTier) Validate() error {
	if _, ok := getTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service tier", fmt.Errorf("%d is not a valid service tier", t))
	}
	return nil
}

// String returns the wire name of the tier.
func (t ServiceTier) String() string {
	if s, ok := getTierStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsExpress reports whether the tier carries the express surcharge.
func (t ServiceTier) IsExpress() bool {
	return t == TierExpress
}

// PaymentMode states how the ongkir is paid.
type PaymentMode int

const (
	PayUnknown PaymentMode = iota
	// PayNonCOD means the ongkir is settled separately from any COD collection.
	PayNonCOD
	// PayCOD means the ongkir is bundled into the COD collection.
	PayCOD
)

func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		PayNonCOD: "NON_COD",
		PayCOD:    "COD",
	}
}

// PaymentModeFromString parses the wire representation of a payment mode.
func PaymentModeFromString(s string) (PaymentMode, error) {
	for m, str := range getPaymentModeStrings() {
		if str == s {
			return m, nil
		}
	}
	return PayUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment mode", fmt.Errorf("%q is not a valid payment mode", s))
}

// Validate checks the mode is one of the defined values.
func (m PaymentMode) Validate() error {
	if _, ok := getPaymentModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment mode", fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the wire name of the payment mode.
func (m PaymentMode) String() string {
	if s, ok := getPaymentModeStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// Sender identifies the customer requesting the job.
type Sender struct {
	Name  string
	Phone string
}

// Validate requires both name and phone.
func (s Sender) Validate() error {
	if s.Name == "" {
		return errs.NewValueIsRequiredError("sender name")
	}
	if s.Phone == "" {
		return errs.NewValueIsRequiredError("sender phone")
	}
	return nil
}

// Stop is one end of the route: a free-text address plus an optional map link.
type Stop struct {
	Address string
	MapLink string
}

// Validate requires the address text; the map link is optional.
func (s Stop) Validate() error {
	if s.Address == "" {
		return errs.NewValueIsRequiredError("stop address")
	}
	return nil
}

// AddOns are informational flags recorded on the order. They never alter the
// computed ongkir: an admin prices them manually when relevant.
type AddOns struct {
	ReturnTrip bool
	Bulky      bool
	Heavy      bool
	WaitingFee int64
}

// Validate rejects a negative waiting fee.
func (a AddOns) Validate() error {
	if a.WaitingFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"waiting fee", fmt.Errorf("%d is negative", a.WaitingFee))
	}
	return nil
}
