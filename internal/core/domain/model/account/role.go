package account

import (
	"fmt"

	"foodex/internal/pkg/errs"
)

// Role represents the fixed role a user receives at signup. It governs the
// default access policy: customers own the orders they place, restaurant
// identities act on their restaurant's orders, delivery identities act on the
// orders assigned to them, and admins bypass relation checks.
//
// Role is a closed enum; values outside the declared constants are invalid.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders and reads its own orders.
	Customer

	// Restaurant accepts and prepares orders addressed to its restaurant.
	Restaurant

	// Delivery carries assigned orders to the customer.
	Delivery

	// Admin is the implied operator role with unrestricted access.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Customer:    "CUSTOMER",
		Restaurant:  "RESTAURANT",
		Delivery:    "DELIVERY",
		Admin:       "ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:   "CUSTOMER",
		Restaurant: "RESTAURANT",
		Delivery:   "DELIVERY",
		Admin:      "ADMIN",
	}
}

// RoleFromString parses the wire representation of a role ("CUSTOMER",
// "RESTAURANT", "DELIVERY", "ADMIN"). The empty string maps to Customer, the
// signup default. Any other unrecognized value is an error.
func RoleFromString(s string) (Role, error) {
	if s == "" {
		return Customer, nil
	}
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the declared valid values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
