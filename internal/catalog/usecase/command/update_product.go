package command

import (
	"fmt"
	"time"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ID          uint
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Brand       string
	Tags        []string
	ImageURL    string
	IsActive    bool
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("product id is required")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Price = cmd.Price
	product.Stock = cmd.Stock
	product.Category = cmd.Category
	product.Brand = cmd.Brand
	product.Tags = cmd.Tags
	product.ImageURL = cmd.ImageURL
	product.IsActive = cmd.IsActive
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
