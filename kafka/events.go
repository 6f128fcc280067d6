package kafka

import "time"

// OrderPlacedEvent is published when a customer places an order.
// Fulfillment consumers use it to debit stock and schedule shipment.
type OrderPlacedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     uint      `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      uint      `json:"user_id"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReviewReportedEvent is published when a review crosses the report
// threshold and needs moderator attention.
type ReviewReportedEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ReviewID    uint      `json:"review_id"`
	ProductID   uint      `json:"product_id"`
	ReportCount int       `json:"report_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced    = "order.placed"
	EventTypeReviewReported = "review.reported"
)

// Kafka topics
const (
	TopicOrderPlaced    = "order-placed"
	TopicReviewReported = "review-reported"
)
