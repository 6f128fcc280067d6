package query

import (
	"fmt"

	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

// ListOrdersQuery lists orders for a requester. Admins see every order,
// everyone else only their own.
type ListOrdersQuery struct {
	RequesterID   uint
	RequesterRole string
}

// ListOrdersHandler handles order listing queries
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query, newest first.
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.Order, error) {
	var (
		orders []domain.Order
		err    error
	)
	if q.RequesterRole == auth.RoleAdmin {
		orders, err = h.repo.FindAll()
	} else {
		orders, err = h.repo.FindByUserID(q.RequesterID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
