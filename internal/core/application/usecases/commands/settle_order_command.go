package commands

import (
	"errors"
	"fmt"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/errs"
	"kurir/internal/pkg/guard"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettlementTrack selects which money flow of an order is being settled.
type SettlementTrack string

const (
	// TrackNonCodFee toggles whether the delivery fee of a non-COD order has
	// been paid; Settled false marks it unpaid again.
	TrackNonCodFee SettlementTrack = "NONCOD_FEE"
	// TrackCod marks collected COD proceeds as remitted. One way only.
	TrackCod SettlementTrack = "COD"
	// TrackTalangan marks the advance float reimbursed; Settled false is the
	// exceptional admin correction that reverses it.
	TrackTalangan SettlementTrack = "TALANGAN"
)

// SettlementTrackFromString parses the wire form of a settlement track.
func SettlementTrackFromString(s string) (SettlementTrack, error) {
	switch SettlementTrack(s) {
	case TrackNonCodFee, TrackCod, TrackTalangan:
		return SettlementTrack(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"track", fmt.Errorf("%q is not a settlement track", s))
	}
}

// SettleOrderCommand flips one settlement flag of an order. Settlement is
// independent of the lifecycle: it is legal on terminal orders and never
// moves the status.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	track   SettlementTrack
	settled bool
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a command to settle one money track of an
// order. Marking COD unsettled is rejected here: remitted cash has no undo.
func NewSettleOrderCommand(orderID kernel.UUID, track SettlementTrack, settled bool, actor order.Actor) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if _, err := SettlementTrackFromString(string(track)); err != nil {
		return SettleOrderCommand{}, err
	}
	if track == TrackCod && !settled {
		return SettleOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"settled", errors.New("cod settlement cannot be undone"))
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return SettleOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.track = track
	cmd.settled = settled
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c SettleOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Track returns the money flow being settled.
func (c SettleOrderCommand) Track() SettlementTrack { return c.track }

// Settled returns the requested flag value.
func (c SettleOrderCommand) Settled() bool { return c.settled }

// Actor returns who is settling.
func (c SettleOrderCommand) Actor() order.Actor { return c.actor }
