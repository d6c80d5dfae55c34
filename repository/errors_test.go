package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError("noop", nil))
	assert.Equal(t, ErrNotFound, wrapError("find", gorm.ErrRecordNotFound))
	assert.ErrorIs(t, wrapError("find", fmt.Errorf("scan: %w", gorm.ErrRecordNotFound)), ErrNotFound)

	dupCases := map[string]error{
		"gorm":     gorm.ErrDuplicatedKey,
		"postgres": &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
		"mysql":    &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"},
	}
	for name, cause := range dupCases {
		err := wrapError("create user", cause)
		assert.ErrorIs(t, err, ErrDuplicate, name)
		assert.ErrorIs(t, err, cause, name)
	}

	other := errors.New("connection refused")
	err := wrapError("list items", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, "failed to list items: connection refused", err.Error())

	fk := &pgconn.PgError{Code: "23503"}
	assert.NotErrorIs(t, wrapError("create item", fk), ErrDuplicate)
}
