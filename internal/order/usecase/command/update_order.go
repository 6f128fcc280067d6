package command

import (
	"fmt"
	"time"

	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

// UpdateOrderCommand patches the status fields of an order. Nil fields
// are left untouched; everything else on an order is immutable.
type UpdateOrderCommand struct {
	OrderID       uint
	RequesterRole string
	Status        *string
	PaymentStatus *string
}

// UpdateOrderHandler handles admin order updates
type UpdateOrderHandler struct {
	repo domain.OrderRepository
}

// NewUpdateOrderHandler creates a new update order handler
func NewUpdateOrderHandler(repo domain.OrderRepository) *UpdateOrderHandler {
	return &UpdateOrderHandler{repo: repo}
}

// Handle executes the update order command, enforcing the status
// transition table.
func (h *UpdateOrderHandler) Handle(cmd UpdateOrderCommand) (*domain.Order, error) {
	if cmd.RequesterRole != auth.RoleAdmin {
		return nil, domain.ErrAccessDenied
	}
	if cmd.OrderID == 0 {
		return nil, fmt.Errorf("order id is required")
	}
	if cmd.Status == nil && cmd.PaymentStatus == nil {
		return nil, fmt.Errorf("nothing to update")
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	if cmd.Status != nil {
		if !domain.ValidStatus(*cmd.Status) {
			return nil, fmt.Errorf("invalid status: %s", *cmd.Status)
		}
		if *cmd.Status != order.Status {
			if !domain.CanTransition(order.Status, *cmd.Status) {
				return nil, fmt.Errorf("%w: %s -> %s",
					domain.ErrInvalidTransition, order.Status, *cmd.Status)
			}
			order.Status = *cmd.Status
		}
	}

	if cmd.PaymentStatus != nil {
		if !domain.ValidPaymentStatus(*cmd.PaymentStatus) {
			return nil, fmt.Errorf("invalid payment status: %s", *cmd.PaymentStatus)
		}
		order.PaymentStatus = *cmd.PaymentStatus
	}

	order.UpdatedAt = time.Now()
	if err := h.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return order, nil
}
