package repository

import (
	"context"

	"github.com/koldo-a/backend-2/models"
	"gorm.io/gorm"
)

type ItemRepo struct {
	db *gorm.DB
}

// Create inserts the item without checking that its owner exists; a missing
// owner surfaces as the store's foreign key error.
func (r *ItemRepo) Create(ctx context.Context, item *models.Item) error {
	return wrapError("create item", r.db.WithContext(ctx).Create(item).Error)
}

func (r *ItemRepo) List(ctx context.Context) ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, wrapError("list items", err)
	}
	return items, nil
}

func (r *ItemRepo) UpdateName(ctx context.Context, id uint, name string) (int64, error) {
	// Single round-trip, no fetch-then-update.
	result := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return 0, wrapError("update item", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ItemRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		return 0, wrapError("delete item", result.Error)
	}
	return result.RowsAffected, nil
}
