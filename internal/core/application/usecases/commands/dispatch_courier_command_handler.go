package commands

import (
	"context"
	"errors"

	"foodex/internal/core/domain/services"
	"foodex/internal/pkg/errs"
)

var (
	// ErrNoOrderToDispatch is returned when no accepted, unassigned order exists.
	ErrNoOrderToDispatch = errors.New("no order to dispatch")

	// ErrNoFreeCouriersFound is returned when every delivery user is busy.
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
)

// DispatchCourierCommandHandler orchestrates automatic courier dispatch.
// Finds the oldest accepted, unassigned order, picks an available delivery
// user through the CourierDispatcher domain service, and persists both sides
// of the match in one transaction.
type DispatchCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CourierDispatcher
}

// NewDispatchCourierCommandHandler creates a handler for automatic dispatch.
func NewDispatchCourierCommandHandler(uowFactory UoWFactory) DispatchCourierCommandHandler {
	return DispatchCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewCourierDispatcher(),
	}
}

// Handle processes one dispatch round. ErrNoOrderToDispatch and
// ErrNoFreeCouriersFound are expected idle-system outcomes; callers should
// not treat them as failures.
func (h DispatchCourierCommandHandler) Handle(ctx context.Context, cmd DispatchCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	orderRepo := uow.OrderRepository()

	target, err := orderRepo.GetFirstAcceptedUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderToDispatch
	}
	if err != nil {
		return err
	}

	couriers, err := userRepo.GetAvailableCouriers(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	courier, err := h.dispatcher.Dispatch(target, couriers)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}
	if err = userRepo.Update(ctx, courier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
