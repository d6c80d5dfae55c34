// Package repository is the only place that talks to the database. Handlers
// depend on the interfaces here, never on *gorm.DB.
package repository

import (
	"context"
	"errors"

	"github.com/koldo-a/backend-2/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// List returns every user ordered by id.
	List(ctx context.Context) ([]models.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	List(ctx context.Context) ([]models.Item, error)
	// UpdateName and Delete report how many rows matched. Zero is not an error.
	UpdateName(ctx context.Context, id uint, name string) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// Store bundles the repositories with a liveness check for the backing database.
type Store interface {
	Users() UserRepository
	Items() ItemRepository
	Ping(ctx context.Context) error
}
