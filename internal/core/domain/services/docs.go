// Package services contains stateless domain services that coordinate
// behavior across aggregates: the AccessPolicy gating every order operation,
// and the CourierDispatcher matching unassigned orders with available
// delivery users.
package services
