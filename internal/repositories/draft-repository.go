package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"association-console/internal/entities"
)

//go:generate mockgen -source=draft-repository.go -destination=mocks/draft_repository.go -package=mocks

type DraftRepositoryInterface interface {
	// GetDraft returns nil when the session has no draft.
	GetDraft(ctx context.Context, sessionID int64) (*entities.SessionDraft, error)
	SaveDraft(ctx context.Context, draft *entities.SessionDraft, ttl time.Duration) error
	DeleteDraft(ctx context.Context, sessionID int64) error
}

// DraftRepository keeps completion drafts as JSON in the cache.
type DraftRepository struct {
	cache CacheRepositoryInterface
}

func NewDraftRepository(cache CacheRepositoryInterface) DraftRepositoryInterface {
	return &DraftRepository{cache: cache}
}

func draftKey(sessionID int64) string {
	return fmt.Sprintf("session_draft:%d", sessionID)
}

func (r *DraftRepository) GetDraft(ctx context.Context, sessionID int64) (*entities.SessionDraft, error) {
	raw, err := r.cache.Get(ctx, draftKey(sessionID))
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft %d: %w", sessionID, err)
	}

	var draft entities.SessionDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("decode draft %d: %w", sessionID, err)
	}
	return &draft, nil
}

func (r *DraftRepository) SaveDraft(ctx context.Context, draft *entities.SessionDraft, ttl time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft %d: %w", draft.SessionID, err)
	}
	return r.cache.Set(ctx, draftKey(draft.SessionID), data, ttl)
}

func (r *DraftRepository) DeleteDraft(ctx context.Context, sessionID int64) error {
	return r.cache.Del(ctx, draftKey(sessionID))
}
