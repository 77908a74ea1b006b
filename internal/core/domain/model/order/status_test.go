package order_test

import (
	"testing"

	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.New, order.Assigned, order.Pickup,
			order.Dikirim, order.Selesai, order.Cancelled, order.Rejected,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:    "UNKNOWN",
		order.New:        "NEW",
		order.Assigned:   "ASSIGNED",
		order.Pickup:     "PICKUP",
		order.Dikirim:    "DIKIRIM",
		order.Selesai:    "SELESAI",
		order.Cancelled:  "CANCELLED",
		order.Rejected:   "REJECTED",
		order.Status(42): "UNKNOWN",
	}
	for s, want := range cases {
		assert.Equal(t, want, s.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.New, order.Assigned, order.Pickup,
			order.Dikirim, order.Selesai, order.Cancelled, order.Rejected,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("DELIVERED")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Selesai.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Rejected.IsTerminal())

	for _, s := range []order.Status{order.New, order.Assigned, order.Pickup, order.Dikirim} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("forward path is legal", func(t *testing.T) {
		assert.True(t, order.New.CanTransitionTo(order.Assigned))
		assert.True(t, order.Assigned.CanTransitionTo(order.Pickup))
		assert.True(t, order.Pickup.CanTransitionTo(order.Dikirim))
		assert.True(t, order.Dikirim.CanTransitionTo(order.Selesai))
	})

	t.Run("reassignment is legal", func(t *testing.T) {
		assert.True(t, order.Assigned.CanTransitionTo(order.Assigned))
	})

	t.Run("skipping states is illegal", func(t *testing.T) {
		assert.False(t, order.New.CanTransitionTo(order.Pickup))
		assert.False(t, order.New.CanTransitionTo(order.Selesai))
		assert.False(t, order.Assigned.CanTransitionTo(order.Selesai))
		assert.False(t, order.Pickup.CanTransitionTo(order.Selesai))
	})

	t.Run("moving backwards is illegal", func(t *testing.T) {
		assert.False(t, order.Dikirim.CanTransitionTo(order.Pickup))
		assert.False(t, order.Pickup.CanTransitionTo(order.Assigned))
		assert.False(t, order.Assigned.CanTransitionTo(order.New))
	})

	t.Run("cancel and reject are legal from any non-terminal status", func(t *testing.T) {
		for _, s := range []order.Status{order.New, order.Assigned, order.Pickup, order.Dikirim} {
			assert.True(t, s.CanTransitionTo(order.Cancelled), s.String())
			assert.True(t, s.CanTransitionTo(order.Rejected), s.String())
		}
	})

	t.Run("terminal statuses have no outgoing edges except self", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Selesai, order.Cancelled, order.Rejected} {
			for _, to := range []order.Status{
				order.New, order.Assigned, order.Pickup, order.Dikirim,
				order.Selesai, order.Cancelled, order.Rejected,
			} {
				if to == terminal {
					assert.True(t, terminal.CanTransitionTo(to), "same status is a no-op")
					continue
				}
				assert.False(t, terminal.CanTransitionTo(to), "%s -> %s", terminal, to)
			}
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("legal move returns requested status", func(t *testing.T) {
		s, err := order.Pickup.TransitionTo(order.Dikirim)

		require.NoError(t, err)
		assert.Equal(t, order.Dikirim, s)
	})

	t.Run("illegal move returns InvalidTransition", func(t *testing.T) {
		_, err := order.Selesai.TransitionTo(order.Pickup)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "SELESAI -> PICKUP")
	})

	t.Run("invalid target status is rejected", func(t *testing.T) {
		_, err := order.New.TransitionTo(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_ValidateAssign(t *testing.T) {
	require.NoError(t, order.New.ValidateAssign())
	require.NoError(t, order.Assigned.ValidateAssign())

	for _, s := range []order.Status{order.Pickup, order.Dikirim, order.Selesai, order.Cancelled, order.Rejected} {
		err := s.ValidateAssign()
		require.Error(t, err, s.String())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	}
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	t.Run("new orders must be unassigned", func(t *testing.T) {
		require.NoError(t, order.New.ValidateCanHaveCourier(false))
		require.Error(t, order.New.ValidateCanHaveCourier(true))
	})

	t.Run("delivery path requires a courier", func(t *testing.T) {
		for _, s := range []order.Status{order.Assigned, order.Pickup, order.Dikirim, order.Selesai} {
			require.NoError(t, s.ValidateCanHaveCourier(true), s.String())
			require.Error(t, s.ValidateCanHaveCourier(false), s.String())
		}
	})

	t.Run("cancelled and rejected accept both", func(t *testing.T) {
		for _, s := range []order.Status{order.Cancelled, order.Rejected} {
			require.NoError(t, s.ValidateCanHaveCourier(true))
			require.NoError(t, s.ValidateCanHaveCourier(false))
		}
	})
}
