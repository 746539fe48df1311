package repository

import (
	"context"
	"testing"

	"gymdesk/internal/domain"
	"gymdesk/internal/modules/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

var _ auth.UserRepository = (*UserRepository)(nil)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        "file:" + t.Name() + "?mode=memory&cache=shared",
		}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return db
}

func TestUserRepository_UpdatePasswordByID(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := &domain.User{Username: "frontdesk", PasswordHash: "old-hash"}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "new-hash"))

	got, err := repo.GetByUsername(ctx, "frontdesk")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)
}

func TestUserRepository_UpdatePassword_UnknownID(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	err := repo.UpdatePassword(context.Background(), 9999, "new-hash")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
