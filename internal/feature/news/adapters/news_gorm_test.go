package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/news/domain/entity"
	"blog_backend/internal/feature/news/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&authentity.User{}, &entity.News{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, nickname string) *authentity.User {
	t.Helper()
	u := &authentity.User{Nickname: nickname, Email: nickname + "@example.com", HashedPassword: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestNewsGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")

	n := &entity.News{Title: "Hello", Content: "World", Slug: "hello", UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, n))
	assert.NotZero(t, n.ID)
	assert.False(t, n.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, alice.ID, got.UserID)

	_, err = repo.FindByID(ctx, n.ID+100)
	assert.ErrorIs(t, err, usecase.ErrNewsNotFound)

	assert.Error(t, repo.Create(ctx, nil))
}

func TestNewsGorm_FindByIDAndOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	n := &entity.News{Title: "Mine", Content: "c", Slug: "mine", UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, n))

	got, err := repo.FindByIDAndOwner(ctx, n.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, n.ID, got.ID)

	_, err = repo.FindByIDAndOwner(ctx, n.ID, bob.ID)
	assert.ErrorIs(t, err, usecase.ErrNewsNotFound)
}

func TestNewsGorm_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	n := &entity.News{Title: "Old", Content: "old", Slug: "old", UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, n))

	t.Run("owner can update including privacy", func(t *testing.T) {
		err := repo.Update(ctx, &entity.News{ID: n.ID, UserID: alice.ID, Title: "New", Content: "new", Slug: "new", IsPrivate: true})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, n.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "new", got.Content)
		assert.True(t, got.IsPrivate)
		assert.Equal(t, alice.ID, got.UserID)
	})

	t.Run("privacy can be cleared", func(t *testing.T) {
		err := repo.Update(ctx, &entity.News{ID: n.ID, UserID: alice.ID, Title: "New", Content: "new", Slug: "new", IsPrivate: false})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, n.ID)
		require.NoError(t, err)
		assert.False(t, got.IsPrivate)
	})

	t.Run("non-owner gets not found and nothing changes", func(t *testing.T) {
		err := repo.Update(ctx, &entity.News{ID: n.ID, UserID: bob.ID, Title: "Hijack", Content: "x", Slug: "hijack"})
		assert.ErrorIs(t, err, usecase.ErrNewsNotFound)

		got, err := repo.FindByID(ctx, n.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := repo.Update(ctx, &entity.News{ID: 9999, UserID: alice.ID, Title: "x", Content: "x", Slug: "x"})
		assert.ErrorIs(t, err, usecase.ErrNewsNotFound)
	})
}

func TestNewsGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNewsRepository(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	n := &entity.News{Title: "Bye", Content: "c", Slug: "bye", UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, n))

	assert.ErrorIs(t, repo.Delete(ctx, n.ID, bob.ID), usecase.ErrNewsNotFound)
	_, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err, "post must survive a non-owner delete")

	require.NoError(t, repo.Delete(ctx, n.ID, alice.ID))
	_, err = repo.FindByID(ctx, n.ID)
	assert.ErrorIs(t, err, usecase.ErrNewsNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, n.ID, alice.ID), usecase.ErrNewsNotFound)
}
