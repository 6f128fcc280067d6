package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ShippingAddress is the destination for an order. All fields are required.
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// IsComplete reports whether every address field is filled in.
func (a ShippingAddress) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.State != "" &&
		a.Country != "" && a.PostalCode != ""
}

// OrderItem is one line of an order. Name and unit price are snapshotted
// at purchase time so historical orders survive catalog changes.
type OrderItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	OrderID     uint    `json:"-" gorm:"not null;index"`
	ProductID   uint    `json:"product_id" gorm:"not null"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price" gorm:"not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// Extension returns the line total.
func (i OrderItem) Extension() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Order represents a purchase transaction. Line items and total are
// immutable after creation; only status fields may change.
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	OrderNumber     string          `json:"order_number" gorm:"uniqueIndex"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64         `json:"total_amount" gorm:"not null"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"embedded;embeddedPrefix:shipping_"`
	Status          string          `json:"status" gorm:"default:'pending'"`
	PaymentStatus   string          `json:"payment_status" gorm:"default:'pending'"`
	PaymentMethod   string          `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// TotalEpsilon guards the float comparison between the declared and the
// server-recomputed order total.
const TotalEpsilon = 0.01

// statusTransitions is the allowed-transition table. Delivered and
// cancelled are terminal.
var statusTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Domain errors surfaced through the delivery layer.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrPriceMismatch     = errors.New("item price does not match current product price")
	ErrTotalMismatch     = errors.New("declared total does not match calculated total")
	ErrIncompleteAddress = errors.New("shipping address is incomplete")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrAccessDenied      = errors.New("access denied")
)

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindAll() ([]Order, error)
	FindByUserID(userID uint) ([]Order, error)
	Update(order *Order) error

	// HasDeliveredProduct reports whether the user has a delivered order
	// containing the product. Gates review creation.
	HasDeliveredProduct(userID, productID uint) (bool, error)
}
