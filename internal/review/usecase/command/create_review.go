package command

import (
	"fmt"
	"time"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	orderdomain "github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/internal/review/domain"
)

// CreateReviewCommand represents the command to create a review
type CreateReviewCommand struct {
	UserID    uint
	ProductID uint
	Rating    int
	Title     string
	Content   string
	Images    []string
}

// CreateReviewHandler handles review creation
type CreateReviewHandler struct {
	repo     domain.ReviewRepository
	orders   orderdomain.OrderRepository
	products catalogdomain.ProductRepository
}

// NewCreateReviewHandler creates a new create review handler
func NewCreateReviewHandler(repo domain.ReviewRepository, orders orderdomain.OrderRepository, products catalogdomain.ProductRepository) *CreateReviewHandler {
	return &CreateReviewHandler{repo: repo, orders: orders, products: products}
}

// Handle executes the create review command. Only verified purchasers of
// a delivered order may review, once per product.
func (h *CreateReviewHandler) Handle(cmd CreateReviewCommand) (*domain.Review, error) {
	if cmd.UserID == 0 || cmd.ProductID == 0 {
		return nil, fmt.Errorf("user id and product id are required")
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	if _, err := h.products.FindByID(cmd.ProductID); err != nil {
		return nil, catalogdomain.ErrProductNotFound
	}

	delivered, err := h.orders.HasDeliveredProduct(cmd.UserID, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to check purchase history: %w", err)
	}
	if !delivered {
		return nil, domain.ErrNotPurchased
	}

	if existing, _ := h.repo.FindByProductAndUser(cmd.ProductID, cmd.UserID); existing != nil {
		return nil, domain.ErrDuplicateReview
	}

	review := &domain.Review{
		ProductID: cmd.ProductID,
		UserID:    cmd.UserID,
		Rating:    cmd.Rating,
		Title:     cmd.Title,
		Content:   cmd.Content,
		Images:    cmd.Images,
		Verified:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := recomputeProductRating(h.repo, h.products, cmd.ProductID); err != nil {
		return nil, err
	}

	return review, nil
}
