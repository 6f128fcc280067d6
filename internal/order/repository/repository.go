package repository

import (
	"gorm.io/gorm"

	"github.com/shopwell/storefront/internal/order/domain"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

func (r *GormOrderRepository) Create(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll() ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByUserID(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) Update(order *domain.Order) error {
	return r.db.Save(order).Error
}

func (r *GormOrderRepository) HasDeliveredProduct(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ?", userID).
		Where("orders.status = ?", domain.StatusDelivered).
		Where("order_items.product_id = ?", productID).
		Count(&count).Error
	return count > 0, err
}
