package commands

import (
	"errors"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a signup request. The role arrives already
// parsed; callers apply the Customer default for absent roles via
// account.RoleFromString before constructing the command.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	email        string
	password     string
	role         account.Role
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user identity.
// restaurantID must be provided exactly when role is Restaurant; the aggregate
// enforces that pairing, the command only validates its own inputs.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email, password string,
	role account.Role,
	restaurantID *kernel.UUID,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.restaurantID = restaurantID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier generated for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the signup email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain submitted password. It is hashed by the handler
// before it ever reaches an aggregate or the store.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

// RestaurantID returns the restaurant affiliation for Restaurant-role signups.
func (c RegisterUserCommand) RestaurantID() *kernel.UUID {
	return c.restaurantID
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
