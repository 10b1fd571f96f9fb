package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_backend/internal/feature/news/domain/entity"
)

// mockNewsRepository is an in-memory NewsRepository.
type mockNewsRepository struct {
	items     map[uint]*entity.News
	nextID    uint
	createErr error
}

func newMockNewsRepository() *mockNewsRepository {
	return &mockNewsRepository{items: map[uint]*entity.News{}}
}

func (m *mockNewsRepository) Create(ctx context.Context, n *entity.News) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	n.ID = m.nextID
	cp := *n
	m.items[n.ID] = &cp
	return nil
}

func (m *mockNewsRepository) FindByID(ctx context.Context, id uint) (*entity.News, error) {
	n, ok := m.items[id]
	if !ok {
		return nil, ErrNewsNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *mockNewsRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.News, error) {
	n, err := m.FindByID(ctx, id)
	if err != nil || n.UserID != ownerID {
		return nil, ErrNewsNotFound
	}
	return n, nil
}

func (m *mockNewsRepository) Update(ctx context.Context, n *entity.News) error {
	cur, ok := m.items[n.ID]
	if !ok || cur.UserID != n.UserID {
		return ErrNewsNotFound
	}
	cur.Title, cur.Content, cur.Slug, cur.IsPrivate = n.Title, n.Content, n.Slug, n.IsPrivate
	return nil
}

func (m *mockNewsRepository) Delete(ctx context.Context, id, ownerID uint) error {
	cur, ok := m.items[id]
	if !ok || cur.UserID != ownerID {
		return ErrNewsNotFound
	}
	delete(m.items, id)
	return nil
}

func TestNewsUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with slug and owner", func(t *testing.T) {
		repo := newMockNewsRepository()
		uc := NewNewsUsecase(repo)

		n, err := uc.Create(ctx, 7, NewsInput{Title: "  Hello World  ", Content: "body", IsPrivate: true})
		require.NoError(t, err)
		assert.Equal(t, "Hello World", n.Title)
		assert.Equal(t, "hello-world", n.Slug)
		assert.Equal(t, uint(7), n.UserID)
		assert.True(t, n.IsPrivate)
		assert.Len(t, repo.items, 1)
	})

	t.Run("falls back when title has no sluggable characters", func(t *testing.T) {
		uc := NewNewsUsecase(newMockNewsRepository())

		n, err := uc.Create(ctx, 1, NewsInput{Title: "!!!", Content: "body"})
		require.NoError(t, err)
		assert.Equal(t, "news", n.Slug)
	})

	tests := []struct {
		name string
		in   NewsInput
	}{
		{"empty title", NewsInput{Title: "   ", Content: "body"}},
		{"empty content", NewsInput{Title: "t", Content: "\n"}},
		{"title too long", NewsInput{Title: strings.Repeat("a", 256), Content: "body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockNewsRepository()
			uc := NewNewsUsecase(repo)

			_, err := uc.Create(ctx, 1, tt.in)
			assert.ErrorIs(t, err, ErrInvalidNews)
			assert.Empty(t, repo.items)
		})
	}

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := newMockNewsRepository()
		repo.createErr = errors.New("disk full")
		uc := NewNewsUsecase(repo)

		_, err := uc.Create(ctx, 1, NewsInput{Title: "t", Content: "c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestNewsUsecase_Update(t *testing.T) {
	ctx := context.Background()
	repo := newMockNewsRepository()
	uc := NewNewsUsecase(repo)

	n, err := uc.Create(ctx, 1, NewsInput{Title: "Old", Content: "old"})
	require.NoError(t, err)

	t.Run("owner edits", func(t *testing.T) {
		got, err := uc.Update(ctx, n.ID, 1, NewsInput{Title: "New Title", Content: "new", IsPrivate: true})
		require.NoError(t, err)
		assert.Equal(t, "New Title", got.Title)
		assert.Equal(t, "new-title", got.Slug)
		assert.True(t, got.IsPrivate)
	})

	t.Run("other user is refused", func(t *testing.T) {
		_, err := uc.Update(ctx, n.ID, 2, NewsInput{Title: "x", Content: "x"})
		assert.ErrorIs(t, err, ErrNewsNotFound)
		assert.Equal(t, "New Title", repo.items[n.ID].Title)
	})

	t.Run("validation runs before lookup", func(t *testing.T) {
		_, err := uc.Update(ctx, 999, 1, NewsInput{Title: "", Content: "x"})
		assert.ErrorIs(t, err, ErrInvalidNews)
	})
}

func TestNewsUsecase_DeleteAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newMockNewsRepository()
	uc := NewNewsUsecase(repo)

	n, err := uc.Create(ctx, 1, NewsInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = uc.FindOwned(ctx, n.ID, 2)
	assert.ErrorIs(t, err, ErrNewsNotFound)

	got, err := uc.FindOwned(ctx, n.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, n.ID, got.ID)

	assert.ErrorIs(t, uc.Delete(ctx, n.ID, 2), ErrNewsNotFound)
	require.NoError(t, uc.Delete(ctx, n.ID, 1))

	_, err = uc.FindByID(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNewsNotFound)
}
