package commands

import (
	"context"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/ports"
)

// RegisterUserCommandHandler handles user signup. The submitted password is
// run through the configured CredentialVerifier before the aggregate is
// built, so plain passwords never reach the store. Email uniqueness is left
// to the database constraint; the repository maps a violation onto
// account.ErrDuplicateEmail.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	verifier   ports.CredentialVerifier
}

// NewRegisterUserCommandHandler creates a handler for signup operations.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	verifier ports.CredentialVerifier,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
	}
}

// Handle processes the signup command and returns the persisted user.
// Fails with account.ErrDuplicateEmail when the email is already registered.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	credential, err := h.verifier.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := account.NewUser(cmd.UserID(), cmd.Email(), credential, cmd.Role(), cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
