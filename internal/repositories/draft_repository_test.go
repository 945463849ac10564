package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"association-console/internal/entities"
)

type fakeCache struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.data[key] = string(value.([]byte))
	c.ttl[key] = expiration
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	v, ok := c.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return c.err
}

func TestDraftRepository_RoundTrip(t *testing.T) {
	cache := newFakeCache()
	repo := NewDraftRepository(cache)
	ctx := context.Background()

	missing, err := repo.GetDraft(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, missing)

	draft := &entities.SessionDraft{
		SessionID: 7,
		Documents: map[string]entities.StagedDocument{
			entities.DocMinutes: {Path: "session-drafts/2024/06/10/a.pdf", FileName: "pv.pdf", ContentType: "application/pdf", Size: 42},
		},
	}
	require.NoError(t, repo.SaveDraft(ctx, draft, 24*time.Hour))
	assert.Equal(t, 24*time.Hour, cache.ttl["session_draft:7"])

	got, err := repo.GetDraft(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "pv.pdf", got.Documents[entities.DocMinutes].FileName)

	require.NoError(t, repo.DeleteDraft(ctx, 7))
	got, err = repo.GetDraft(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftRepository_CacheFailure(t *testing.T) {
	cache := newFakeCache()
	cache.err = errors.New("redis down")

	_, err := NewDraftRepository(cache).GetDraft(context.Background(), 1)
	assert.ErrorContains(t, err, "redis down")
}

func TestDraftRepository_CorruptEntry(t *testing.T) {
	cache := newFakeCache()
	cache.data["session_draft:3"] = "{not json"

	_, err := NewDraftRepository(cache).GetDraft(context.Background(), 3)
	assert.Error(t, err)
}
