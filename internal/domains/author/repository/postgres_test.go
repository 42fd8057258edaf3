package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"mylibrary-backend/internal/domains/author/model"
)

// fakeDB serves the book-id lookup and the delete statement without a
// live database.
type fakeDB struct {
	bookIDs []uuid.UUID
	execTag string
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(db.execTag), nil
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return &fakeRows{ids: db.bookIDs}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

type fakeRows struct {
	ids []uuid.UUID
	i   int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.ids)
}

func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*uuid.UUID)) = r.ids[r.i-1]
	return nil
}

type spyCache struct {
	deleted  []string
	patterns []string
}

func (c *spyCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *spyCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *spyCache) Delete(ctx context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *spyCache) DeletePattern(ctx context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func (c *spyCache) Ping(ctx context.Context) error { return nil }

func TestDeleteInvalidatesCascadedBookEntries(t *testing.T) {
	authorID := uuid.New()
	bookA := uuid.New()
	bookB := uuid.New()

	cache := &spyCache{}
	repo := NewPostgresRepository(&fakeDB{
		bookIDs: []uuid.UUID{bookA, bookB},
		execTag: "DELETE 1",
	}, cache)

	err := repo.Delete(context.Background(), authorID)
	assert.NoError(t, err)

	// The database cascade removes the book rows; the cached detail
	// entries must not outlive them.
	assert.Contains(t, cache.deleted, authorCacheKeyPrefix+authorID.String())
	assert.Contains(t, cache.deleted, bookCacheKeyPrefix+bookA.String())
	assert.Contains(t, cache.deleted, bookCacheKeyPrefix+bookB.String())
	assert.Contains(t, cache.patterns, authorListCacheKey)
	assert.Contains(t, cache.patterns, bookListCacheKey)
}

func TestDeleteWithoutBooksInvalidatesAuthorOnly(t *testing.T) {
	authorID := uuid.New()

	cache := &spyCache{}
	repo := NewPostgresRepository(&fakeDB{execTag: "DELETE 1"}, cache)

	err := repo.Delete(context.Background(), authorID)
	assert.NoError(t, err)

	assert.Equal(t, []string{authorCacheKeyPrefix + authorID.String()}, cache.deleted)
}

func TestDeleteMissingAuthorLeavesCacheAlone(t *testing.T) {
	cache := &spyCache{}
	repo := NewPostgresRepository(&fakeDB{execTag: "DELETE 0"}, cache)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	assert.Empty(t, cache.deleted)
	assert.Empty(t, cache.patterns)
}
