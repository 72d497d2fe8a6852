package commands

import (
	"context"

	"foodex/internal/core/domain/model/order"
	"foodex/internal/core/domain/services"
	"foodex/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler moves an order one step along the fixed
// lifecycle sequence on behalf of an authorized actor. The repository update
// is guarded on the version the order was read at, so of two concurrent
// advances from the same state exactly one succeeds.
//
// When the advance reaches Delivered the assigned delivery person is freed
// for new assignments within the same transaction.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advances.
func NewAdvanceOrderStatusCommandHandler(uowFactory UoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the advance command and returns the updated order.
// Fails with errs.ObjectNotFoundError, services.ErrForbidden,
// order.ErrInvalidTransition, or errs.VersionIsInvalidError on a concurrent
// update of the same order.
func (h AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (*order.Order, error) {
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

	if err = h.policy.Authorize(actor, target, services.AdvanceOrder); err != nil {
		return nil, err
	}

	if err = target.Advance(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if target.Status().IsFinal() && target.IsAssigned() {
		if err = h.releaseCourier(ctx, userRepo, target); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}

func (h AdvanceOrderStatusCommandHandler) releaseCourier(
	ctx context.Context,
	userRepo ports.UserRepository,
	target *order.Order,
) error {
	courier, err := userRepo.Get(ctx, *target.DeliveryPerson())
	if err != nil {
		return err
	}

	if err = courier.MarkAvailable(); err != nil {
		return err
	}

	return userRepo.Update(ctx, courier)
}
