package domain

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product represents a catalog product with its derived rating aggregates.
type Product struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description"`
	Price         float64        `json:"price" gorm:"not null"`
	Stock         int            `json:"stock" gorm:"not null;default:0"`
	Category      string         `json:"category" gorm:"index"`
	Brand         string         `json:"brand" gorm:"index"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`
	ImageURL      string         `json:"image_url"`
	AverageRating float64        `json:"average_rating" gorm:"default:0"`
	NumReviews    int            `json:"num_reviews" gorm:"default:0"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if product can be sold
func (p *Product) IsAvailable() bool {
	return p.Stock > 0 && p.IsActive
}

// ErrProductNotFound is returned when a referenced product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	UpdateStock(id uint, stock int) error
	UpdateRatingStats(id uint, average float64, count int) error

	// Search surface
	Search(filter ProductFilter, sortBy string, limit, offset int) ([]Product, int64, error)
	Facets(filter ProductFilter) (*SearchFacets, error)
	FindRelated(productID uint, limit int) ([]Product, error)
	FindNameMatches(query string, limit int) ([]Product, error)
}
