package controllers

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// minLockTTL keeps the guard on when the configured batch TTL computes to
// nothing (no delay or no backend timeout).
const minLockTTL = time.Minute

type lock struct {
	token  string
	expiry time.Time
}

// RequestDeduplicator rejects a second submission of the same action by the
// same user while the first one runs. Entries expire after ttl so a crashed
// handler cannot lock a user out.
type RequestDeduplicator struct {
	mu    sync.Mutex
	locks map[string]lock
	now   func() time.Time
}

func NewRequestDeduplicator() *RequestDeduplicator {
	return &RequestDeduplicator{locks: make(map[string]lock), now: time.Now}
}

// TryAcquire returns the token to pass to Release, or false when the action
// is already held.
func (d *RequestDeduplicator) TryAcquire(user, action string, ttl time.Duration) (string, bool) {
	if ttl < minLockTTL {
		ttl = minLockTTL
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	for key, l := range d.locks {
		if now.After(l.expiry) {
			delete(d.locks, key)
		}
	}

	key := user + "_" + action
	if _, held := d.locks[key]; held {
		return "", false
	}
	token := uuid.NewString()
	d.locks[key] = lock{token: token, expiry: now.Add(ttl)}
	return token, true
}

// Release frees the action only if token still owns it: a holder whose entry
// expired must not free the lock of the submission that replaced it.
func (d *RequestDeduplicator) Release(user, action, token string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := user + "_" + action
	if l, ok := d.locks[key]; ok && l.token == token {
		delete(d.locks, key)
	}
}
