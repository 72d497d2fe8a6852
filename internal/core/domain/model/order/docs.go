// Package order contains the Order aggregate and its lifecycle state machine.
// The aggregate exclusively owns status transitions: the only way a status
// changes is through Advance, which follows the fixed forward sequence
// Pending -> Accepted -> OutForDelivery -> Delivered. Customer and restaurant
// references are immutable after creation; the delivery person is set exactly
// once. Mutations bump an optimistic-lock version persisted by the repository
// layer.
package order
