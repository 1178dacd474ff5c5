package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gallery/internal/listquery"
	"gallery/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	listquery.Store[model.Order]
	// Create stores the order and its items in one transaction.
	Create(ctx context.Context, order *model.Order) error
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type orderRepository struct {
	*listStore[model.Order]
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{
		listStore: newListStore[model.Order](db, OrderMapping, "Items"),
		db:        db,
	}
}

// Create creates the order row and then each item inside a transaction.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Omit("Artwork").Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

// Revenue sums the totals of every order that was not cancelled or refunded.
func (r *orderRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status NOT IN ?", []model.OrderStatus{model.OrderCancelled, model.OrderRefunded}).
		Select("SUM(total_amount)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
