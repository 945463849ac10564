package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDeduplicator(t *testing.T) {
	d := NewRequestDeduplicator()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	amina, ok := d.TryAcquire("amina", batchAction, time.Minute)
	require.True(t, ok)
	_, ok = d.TryAcquire("amina", batchAction, time.Minute)
	assert.False(t, ok)
	_, ok = d.TryAcquire("youssef", batchAction, time.Minute)
	assert.True(t, ok, "users are independent")

	d.Release("amina", batchAction, amina)
	_, ok = d.TryAcquire("amina", batchAction, time.Minute)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = d.TryAcquire("youssef", batchAction, time.Minute)
	assert.True(t, ok, "expired entries are dropped")
}

func TestRequestDeduplicator_StaleReleaseKeepsNewerLock(t *testing.T) {
	d := NewRequestDeduplicator()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	first, ok := d.TryAcquire("amina", batchAction, time.Minute)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	second, ok := d.TryAcquire("amina", batchAction, time.Minute)
	require.True(t, ok)
	assert.NotEqual(t, first, second)

	d.Release("amina", batchAction, first)
	_, ok = d.TryAcquire("amina", batchAction, time.Minute)
	assert.False(t, ok, "the expired holder cannot free the current lock")

	d.Release("amina", batchAction, second)
	_, ok = d.TryAcquire("amina", batchAction, time.Minute)
	assert.True(t, ok)
}

func TestRequestDeduplicator_ZeroTTLStillLocks(t *testing.T) {
	d := NewRequestDeduplicator()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	_, ok := d.TryAcquire("amina", batchAction, 0)
	require.True(t, ok)

	now = now.Add(time.Second)
	_, ok = d.TryAcquire("amina", batchAction, 0)
	assert.False(t, ok)
}
