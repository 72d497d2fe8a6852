package commands_test

import (
	"context"
	"errors"
	"testing"

	"foodex/internal/core/application/usecases/commands"
	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegisterUserRepository struct{ mock.Mock }

func (m *MockRegisterUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRegisterUserRepository) Update(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRegisterUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockRegisterUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockRegisterUserRepository) GetAvailableCouriers(ctx context.Context) ([]*account.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.User), args.Error(1)
}

type MockRegisterUoW struct{ mock.Mock }

func (m *MockRegisterUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockRegisterUoWFactory struct{ mock.Mock }

func (m *MockRegisterUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockCredentialVerifier struct{ mock.Mock }

func (m *MockCredentialVerifier) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialVerifier) Verify(storedCredential, password string) error {
	args := m.Called(storedCredential, password)
	return args.Error(0)
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, "alice@example.com", "s3cret", account.Customer, nil)
	require.NoError(t, err)

	userRepo := new(MockRegisterUserRepository)
	uow := new(MockRegisterUoW)
	verifier := new(MockCredentialVerifier)

	mock.InOrder(
		verifier.On("Hash", "s3cret").Return("hashed", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, verifier)
	user, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID())
	assert.Equal(t, "alice@example.com", user.Email())
	assert.Equal(t, "hashed", user.Credential())
	assert.Equal(t, account.Customer, user.Role())
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	verifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly

	factory := new(MockRegisterUoWFactory)
	verifier := new(MockCredentialVerifier)
	handler := commands.NewRegisterUserCommandHandler(factory, verifier)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_HashError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "alice@example.com", "s3cret", account.Customer, nil)
	require.NoError(t, err)

	verifier := new(MockCredentialVerifier)
	verifier.On("Hash", "s3cret").Return("", errors.New("hash error")).Once()

	factory := new(MockRegisterUoWFactory)
	handler := commands.NewRegisterUserCommandHandler(factory, verifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "hash error")
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "alice@example.com", "s3cret", account.Customer, nil)
	require.NoError(t, err)

	userRepo := new(MockRegisterUserRepository)
	uow := new(MockRegisterUoW)
	verifier := new(MockCredentialVerifier)

	mock.InOrder(
		verifier.On("Hash", "s3cret").Return("hashed", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(account.ErrDuplicateEmail).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, verifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, account.ErrDuplicateEmail)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "alice@example.com", "s3cret", account.Customer, nil)
	require.NoError(t, err)

	uow := new(MockRegisterUoW)
	verifier := new(MockCredentialVerifier)
	factory := new(MockRegisterUoWFactory)

	mock.InOrder(
		verifier.On("Hash", "s3cret").Return("hashed", nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewRegisterUserCommandHandler(factory, verifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestRegisterUserCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "alice@example.com", "s3cret", account.Customer, nil)
	require.NoError(t, err)

	userRepo := new(MockRegisterUserRepository)
	uow := new(MockRegisterUoW)
	verifier := new(MockCredentialVerifier)

	mock.InOrder(
		verifier.On("Hash", "s3cret").Return("hashed", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, verifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
