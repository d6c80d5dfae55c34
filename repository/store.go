package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormStore implements Store over a single shared *gorm.DB pool.
type GormStore struct {
	db    *gorm.DB
	users *UserRepo
	items *ItemRepo
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:    db,
		users: &UserRepo{db: db},
		items: &ItemRepo{db: db},
	}
}

func (s *GormStore) Users() UserRepository { return s.users }
func (s *GormStore) Items() ItemRepository { return s.items }

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
