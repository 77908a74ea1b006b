package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kurir/internal/core/application/usecases/commands"
	"kurir/internal/core/domain/model/courier"
)

func TestNewCreateCourierCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateCourierCommand("Budi Santoso")

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "Budi Santoso", cmd.Name())
	assert.NoError(t, cmd.CourierID().Validate())
}

func TestNewCreateCourierCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCourierCommand("")

	require.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestCreateCourierCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCourierCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCourierCommandIsNotConstructed)
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand("Budi Santoso")
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", ctx, mock.MatchedBy(func(c *courier.Courier) bool {
			return c.Name() == "Budi Santoso" && c.IsActive() && !c.IsOnline()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCourierUoWFactory)

	handler := commands.NewCreateCourierCommandHandler(factory)
	err := handler.Handle(ctx, commands.CreateCourierCommand{})

	require.ErrorIs(t, err, commands.ErrCreateCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
