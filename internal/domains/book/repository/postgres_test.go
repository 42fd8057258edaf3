package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"mylibrary-backend/internal/domains/book/model"
)

// stubCache serves pre-seeded entries. The tests pass a nil pool, so any
// path that reaches postgres panics and fails the test.
type stubCache struct {
	entries map[string]interface{}
}

func (c *stubCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	v, ok := c.entries[key]
	if !ok {
		return false, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *stubCache) Delete(ctx context.Context, keys ...string) error        { return nil }
func (c *stubCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (c *stubCache) Ping(ctx context.Context) error                          { return nil }

func TestGetByIDCacheHitStillAppliesVisibility(t *testing.T) {
	futureBook := model.Book{
		ID:              uuid.New(),
		Name:            "Not Yet Published",
		PublicationYear: 2100,
		AuthorID:        uuid.New(),
		LanguageID:      uuid.New(),
	}

	repo := NewPostgresRepository(nil, &stubCache{entries: map[string]interface{}{
		bookCacheKeyPrefix + futureBook.ID.String(): futureBook,
	}})

	_, err := repo.GetByID(context.Background(), futureBook.ID, model.Visibility{MaxYear: 2026})
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	got, err := repo.GetByID(context.Background(), futureBook.ID, model.Visibility{All: true})
	assert.NoError(t, err)
	assert.Equal(t, futureBook.ID, got.ID)
}

func TestListServesFromCache(t *testing.T) {
	filter := model.BookFilter{
		Visibility: model.Visibility{MaxYear: 2026},
		Limit:      50,
	}
	books := []model.Book{{ID: uuid.New(), Name: "Cached", PublicationYear: 2000}}

	repo := NewPostgresRepository(nil, &stubCache{entries: map[string]interface{}{
		listCacheKey(filter): books,
	}})

	got, err := repo.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Cached", got[0].Name)
}

func TestListCacheKeySeparatesFilters(t *testing.T) {
	base := model.BookFilter{Visibility: model.Visibility{MaxYear: 2026}, Limit: 50}

	staff := base
	staff.Visibility = model.Visibility{All: true}
	assert.NotEqual(t, listCacheKey(base), listCacheKey(staff),
		"staff and reader pages must not share an entry")

	searched := base
	searched.SearchTerms = []string{"tolstoy"}
	assert.NotEqual(t, listCacheKey(base), listCacheKey(searched))

	authorID := uuid.New()
	byAuthor := base
	byAuthor.AuthorID = &authorID
	assert.NotEqual(t, listCacheKey(base), listCacheKey(byAuthor))

	paged := base
	paged.Offset = 50
	assert.NotEqual(t, listCacheKey(base), listCacheKey(paged))
}
