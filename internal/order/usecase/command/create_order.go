package command

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/kafka"
	"github.com/shopwell/storefront/pkg/logger"
)

// OrderLine is one submitted line item: the product, the quantity and the
// unit price the client saw.
type OrderLine struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

// CreateOrderCommand represents the command to place an order
type CreateOrderCommand struct {
	UserID          uint
	Items           []OrderLine
	TotalAmount     float64
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
}

// EventPublisher publishes order lifecycle events.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CartClearer empties a user's cart after a successful order.
type CartClearer interface {
	Clear(ctx context.Context, userID uint) error
}

// CreateOrderHandler handles order placement
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	products  catalogdomain.ProductRepository
	publisher EventPublisher
	carts     CartClearer
}

// NewCreateOrderHandler creates a new create order handler. Publisher and
// cart clearer may be nil.
func NewCreateOrderHandler(repo domain.OrderRepository, products catalogdomain.ProductRepository, publisher EventPublisher, carts CartClearer) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, products: products, publisher: publisher, carts: carts}
}

// Handle validates every line against the authoritative catalog price,
// checks the declared total and persists the order.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if !cmd.ShippingAddress.IsComplete() {
		return nil, domain.ErrIncompleteAddress
	}

	var calculatedTotal float64
	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, line := range cmd.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1")
		}

		product, err := h.products.FindByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: product %d", catalogdomain.ErrProductNotFound, line.ProductID)
		}

		// Reject client-side price tampering against the current price.
		if line.UnitPrice != product.Price {
			return nil, fmt.Errorf("%w: product %d", domain.ErrPriceMismatch, line.ProductID)
		}

		calculatedTotal += product.Price * float64(line.Quantity)
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
		})
	}

	if math.Abs(calculatedTotal-cmd.TotalAmount) > domain.TotalEpsilon {
		return nil, fmt.Errorf("%w: declared %.2f, calculated %.2f",
			domain.ErrTotalMismatch, cmd.TotalAmount, calculatedTotal)
	}

	order := &domain.Order{
		OrderNumber:     fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		UserID:          cmd.UserID,
		Items:           items,
		TotalAmount:     calculatedTotal,
		ShippingAddress: cmd.ShippingAddress,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		PaymentMethod:   cmd.PaymentMethod,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Best effort: the order stands even when the event or the cart
	// cleanup fails.
	if h.publisher != nil {
		if err := h.publisher.PublishOrderPlaced(ctx, kafka.OrderPlacedEvent{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			UserID:      order.UserID,
			TotalAmount: order.TotalAmount,
			ItemCount:   len(order.Items),
		}); err != nil {
			logger.Warn(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order placed event")
		}
	}
	if h.carts != nil {
		if err := h.carts.Clear(ctx, cmd.UserID); err != nil {
			logger.Warn(ctx).Err(err).Uint("user_id", cmd.UserID).Msg("Failed to clear cart after order")
		}
	}

	return order, nil
}
