package account

import (
	"errors"
	"fmt"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/errs"
	"foodex/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrEmailIsRequired is returned when creating a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")

	// ErrCredentialIsRequired is returned when creating a user without a credential.
	ErrCredentialIsRequired = errs.NewValueIsRequiredError("credential")

	// ErrDuplicateEmail is returned on signup when the email is already taken.
	// Email uniqueness is enforced by the persistence layer; repositories map
	// the underlying constraint violation onto this sentinel.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials is the single error returned for every failed
	// authentication. Unknown email and wrong password are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotADeliveryUser is returned when an availability operation targets a
	// user whose role is not Delivery.
	ErrNotADeliveryUser = errors.New("user does not have the delivery role")
)

// User is the identity aggregate. A user signs up with an email, a credential
// and a role; the role is fixed for the lifetime of the account.
//
// Invariants:
//   - id is a valid UUID
//   - email and credential are non-empty
//   - role is one of the declared valid roles
//   - restaurantID is present exactly when the role is Restaurant
//   - availability is only meaningful for the Delivery role
//
// The credential field holds whatever the configured CredentialVerifier
// produced at signup (a bcrypt hash in the default setup). The aggregate never
// interprets it.
type User struct {
	id           kernel.UUID
	email        string
	credential   string
	role         Role
	restaurantID *kernel.UUID
	available    bool

	guard guard.ConstructorGuard
}

// NewUser creates a user at signup. restaurantID must be non-nil exactly when
// role is Restaurant. Delivery users start out available for assignment.
func NewUser(id kernel.UUID, email, credential string, role Role, restaurantID *kernel.UUID) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setCredential(credential),
		user.setRole(role),
		user.setRestaurantID(restaurantID),
	); err != nil {
		return nil, err
	}

	user.available = role == Delivery
	return user, nil
}

// RestoreUser reconstructs a user from persistence, including its current
// delivery availability.
func RestoreUser(
	id kernel.UUID,
	email, credential string,
	role Role,
	restaurantID *kernel.UUID,
	available bool,
) (*User, error) {
	user, err := NewUser(id, email, credential, role, restaurantID)
	if err != nil {
		return nil, err
	}

	user.available = available
	return user, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// Credential returns the stored credential as produced by the configured
// CredentialVerifier at signup.
func (u *User) Credential() string {
	return u.credential
}

// Role returns the user's fixed role.
func (u *User) Role() Role {
	return u.role
}

// RestaurantID returns the affiliated restaurant for Restaurant-role users,
// nil otherwise.
func (u *User) RestaurantID() *kernel.UUID {
	return u.restaurantID
}

// IsAvailable reports whether a Delivery-role user can take a new assignment.
// Always false for other roles.
func (u *User) IsAvailable() bool {
	return u.role == Delivery && u.available
}

// MarkBusy flags a delivery user as carrying an order.
func (u *User) MarkBusy() error {
	if u.role != Delivery {
		return ErrNotADeliveryUser
	}
	u.available = false
	return nil
}

// MarkAvailable flags a delivery user as free for a new assignment.
func (u *User) MarkAvailable() error {
	if u.role != Delivery {
		return ErrNotADeliveryUser
	}
	u.available = true
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setCredential(credential string) error {
	if credential == "" {
		return ErrCredentialIsRequired
	}
	u.credential = credential
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setRestaurantID(restaurantID *kernel.UUID) error {
	if u.role == Restaurant && restaurantID == nil {
		return errs.NewValueIsRequiredError("restaurantID")
	}
	if u.role != Restaurant && restaurantID != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantID",
			fmt.Errorf("%s role cannot be affiliated with a restaurant", u.role))
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return err
		}
	}
	u.restaurantID = restaurantID
	return nil
}
