package database

import (
	"fmt"

	"github.com/koldo-a/backend-2/models"
	"gorm.io/gorm"
)

// Migrate creates or extends the users and items tables. Users must come
// first so the items.owner_id foreign key has something to reference.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
