package errs_test

import (
	"errors"
	"testing"

	"kurir/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("SELESAI", "PICKUP")

		assert.Equal(t, "SELESAI", err.From)
		assert.Equal(t, "PICKUP", err.To)
		assert.Equal(t, "invalid transition: SELESAI -> PICKUP", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is terminal")
		err := errs.NewInvalidTransitionErrorWithCause("SELESAI", "PICKUP", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid transition: SELESAI -> PICKUP (cause: order is terminal)", err.Error())
	})
}

func TestInvalidSettlementContextError(t *testing.T) {
	t.Run("NewInvalidSettlementContextError", func(t *testing.T) {
		err := errs.NewInvalidSettlementContextError("cod")

		assert.Equal(t, "cod", err.Track)
		assert.Equal(t, "invalid settlement context: cod", err.Error())
		assert.Equal(t, errs.ErrInvalidSettlementContext, err.Unwrap())
	})

	t.Run("NewInvalidSettlementContextErrorWithCause", func(t *testing.T) {
		cause := errors.New("cod nominal is zero")
		err := errs.NewInvalidSettlementContextErrorWithCause("cod", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid settlement context: cod (cause: cod nominal is zero)", err.Error())
	})
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("order", "123")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "123", err.ID)
	assert.Equal(t, "concurrent modification: order 123", err.Error())
	assert.Equal(t, errs.ErrConcurrentModification, err.Unwrap())
}

func TestDependencyUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewDependencyUnavailableError("route provider", cause)

	assert.Equal(t, "route provider", err.Name)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "dependency unavailable: route provider (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrDependencyUnavailable, err.Unwrap())
}

func TestDomainSentinelsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewInvalidTransitionError("NEW", "SELESAI"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewInvalidSettlementContextError("talangan"), errs.ErrInvalidSettlementContext)
	require.ErrorIs(t, errs.NewConcurrentModificationError("order", 1), errs.ErrConcurrentModification)
	require.ErrorIs(t, errs.NewDependencyUnavailableError("osrm", errors.New("timeout")), errs.ErrDependencyUnavailable)
}
