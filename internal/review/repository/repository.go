package repository

import (
	"gorm.io/gorm"

	"github.com/shopwell/storefront/internal/review/domain"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Review{})
}

func (r *GormReviewRepository) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

func (r *GormReviewRepository) FindByID(id uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormReviewRepository) FindByProductID(productID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) FindByProductAndUser(productID, userID uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.Where("product_id = ? AND user_id = ?", productID, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormReviewRepository) Update(review *domain.Review) error {
	return r.db.Save(review).Error
}

func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Review{}, id).Error
}

func (r *GormReviewRepository) RatingsByProduct(productID uint) ([]int, error) {
	var ratings []int
	err := r.db.Model(&domain.Review{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error
	return ratings, err
}
