package commands

import (
	"context"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/core/domain/services"
)

// AssignCourierCommandHandler sets an order's delivery person exactly once.
// The assignee must hold the Delivery role and is marked busy within the same
// transaction. Reassignment fails with order.ErrAlreadyAssigned; the guarded
// repository update turns a concurrent assignment race into a version
// conflict for the loser.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the assignment command and returns the updated order.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	orderRepo := uow.OrderRepository()

	actor, err := userRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(actor, target, services.AssignOrder); err != nil {
		return nil, err
	}

	courier := actor
	if !cmd.CourierID().IsEqual(cmd.ActorID()) {
		if courier, err = userRepo.Get(ctx, cmd.CourierID()); err != nil {
			return nil, err
		}
	}
	if courier.Role() != account.Delivery {
		return nil, account.ErrNotADeliveryUser
	}

	if err = target.AssignDeliveryPerson(courier.ID()); err != nil {
		return nil, err
	}
	if err = courier.MarkBusy(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}
	if err = userRepo.Update(ctx, courier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
