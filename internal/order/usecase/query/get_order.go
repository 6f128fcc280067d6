package query

import (
	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

// GetOrderQuery fetches one order for its owner or an admin.
type GetOrderQuery struct {
	OrderID       uint
	RequesterID   uint
	RequesterRole string
}

// GetOrderHandler handles single order queries
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query.
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	order, err := h.repo.FindByID(q.OrderID)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.UserID != q.RequesterID && q.RequesterRole != auth.RoleAdmin {
		return nil, domain.ErrAccessDenied
	}
	return order, nil
}
