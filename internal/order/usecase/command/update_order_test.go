package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

func strPtr(s string) *string { return &s }

func seedOrder(repo *mockOrderRepo, status string) *domain.Order {
	order := &domain.Order{UserID: 7, Status: status, PaymentStatus: domain.PaymentPending}
	_ = repo.Create(order)
	return order
}

func TestUpdateOrder_ValidTransition(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, domain.StatusPending)

	handler := NewUpdateOrderHandler(repo)
	updated, err := handler.Handle(UpdateOrderCommand{
		OrderID:       order.ID,
		RequesterRole: auth.RoleAdmin,
		Status:        strPtr(domain.StatusProcessing),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, updated.Status)
}

func TestUpdateOrder_InvalidTransition(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, domain.StatusPending)

	handler := NewUpdateOrderHandler(repo)
	_, err := handler.Handle(UpdateOrderCommand{
		OrderID:       order.ID,
		RequesterRole: auth.RoleAdmin,
		Status:        strPtr(domain.StatusDelivered),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateOrder_TerminalStatusesAreFinal(t *testing.T) {
	repo := newMockOrderRepo()
	handler := NewUpdateOrderHandler(repo)

	for _, terminal := range []string{domain.StatusDelivered, domain.StatusCancelled} {
		order := seedOrder(repo, terminal)
		_, err := handler.Handle(UpdateOrderCommand{
			OrderID:       order.ID,
			RequesterRole: auth.RoleAdmin,
			Status:        strPtr(domain.StatusProcessing),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "from %s", terminal)
	}
}

func TestUpdateOrder_SameStatusIsNoop(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, domain.StatusShipped)

	handler := NewUpdateOrderHandler(repo)
	updated, err := handler.Handle(UpdateOrderCommand{
		OrderID:       order.ID,
		RequesterRole: auth.RoleAdmin,
		Status:        strPtr(domain.StatusShipped),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)
}

func TestUpdateOrder_PaymentStatusOnly(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, domain.StatusPending)

	handler := NewUpdateOrderHandler(repo)
	updated, err := handler.Handle(UpdateOrderCommand{
		OrderID:       order.ID,
		RequesterRole: auth.RoleAdmin,
		PaymentStatus: strPtr(domain.PaymentCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, updated.PaymentStatus)
	assert.Equal(t, domain.StatusPending, updated.Status)
}

func TestUpdateOrder_NonAdminDenied(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, domain.StatusPending)

	handler := NewUpdateOrderHandler(repo)
	_, err := handler.Handle(UpdateOrderCommand{
		OrderID:       order.ID,
		RequesterRole: auth.RoleUser,
		Status:        strPtr(domain.StatusProcessing),
	})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestUpdateOrder_UnknownStatusRejected(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, domain.StatusPending)

	handler := NewUpdateOrderHandler(repo)
	_, err := handler.Handle(UpdateOrderCommand{
		OrderID:       order.ID,
		RequesterRole: auth.RoleAdmin,
		Status:        strPtr("returned"),
	})
	assert.Error(t, err)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	handler := NewUpdateOrderHandler(newMockOrderRepo())
	_, err := handler.Handle(UpdateOrderCommand{
		OrderID:       404,
		RequesterRole: auth.RoleAdmin,
		Status:        strPtr(domain.StatusProcessing),
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
