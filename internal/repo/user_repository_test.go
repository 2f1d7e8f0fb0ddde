package repo

import (
	"Corexus/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Email: "john@corexus.net", Password: "hash", FullName: "John"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.True(t, u.IsActive)
	assert.False(t, u.CreatedAt.IsZero())

	// поиск по email: найдено
	got, err := r.GetUserByEmail(ctx, "john@corexus.net")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "John", got.FullName)

	// поиск по id
	got, err = r.GetUserByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, "john@corexus.net", got.Email)

	// уникальный email: вторая вставка даёт gorm.ErrDuplicatedKey
	_, err = r.CreateUser(ctx, &model.User{Email: "john@corexus.net", Password: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// поиск несуществующего: ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByEmail(ctx, "nobody@corexus.net")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	got, err = r.GetUserByID(ctx, 9999)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInitDB_SQLiteFile(t *testing.T) {
	db, err := InitDB(t.TempDir() + "/corexus.db")
	assert.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&model.User{}))

	// InitDB тоже отдаёт дубликат как gorm.ErrDuplicatedKey
	r := NewUserRepository(db)
	_, err = r.CreateUser(context.Background(), &model.User{Email: "dup@corexus.net", Password: "h"})
	assert.NoError(t, err)
	_, err = r.CreateUser(context.Background(), &model.User{Email: "dup@corexus.net", Password: "h"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
