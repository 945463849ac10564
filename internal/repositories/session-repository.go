package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"association-console/internal/backend"
	"association-console/internal/dto"
	"association-console/internal/entities"
	apperrors "association-console/pkg/errors"
)

//go:generate mockgen -source=session-repository.go -destination=mocks/session_repository.go -package=mocks

type SessionRepositoryInterface interface {
	GetPending(ctx context.Context) (*entities.Session, error)
	GetCompleted(ctx context.Context) ([]entities.Session, error)
	CreateSession(ctx context.Context, payload dto.CreateSessionDTO, documents []backend.FilePart) (*entities.Session, error)
	CompleteSession(ctx context.Context, id int64, documents []backend.FilePart) error
	GetDocuments(ctx context.Context, id int64) ([]entities.DocumentTracking, error)
	DownloadDocument(ctx context.Context, id int64, documentType string) (*backend.File, error)
}

type SessionRepository struct {
	client *backend.Client
}

func NewSessionRepository(client *backend.Client) SessionRepositoryInterface {
	return &SessionRepository{client: client}
}

// GetPending returns nil when no session is pending.
func (r *SessionRepository) GetPending(ctx context.Context) (*entities.Session, error) {
	var session *entities.Session
	if err := r.client.GetJSON(ctx, "/sessions/pending", &session); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if session != nil && session.ID == 0 {
		return nil, nil
	}
	return session, nil
}

func (r *SessionRepository) GetCompleted(ctx context.Context) ([]entities.Session, error) {
	var sessions []entities.Session
	if err := r.client.GetJSON(ctx, "/sessions/completed", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) CreateSession(ctx context.Context, p dto.CreateSessionDTO, documents []backend.FilePart) (*entities.Session, error) {
	form := backend.NewForm().
		Set("sessionType", p.SessionType).
		Set("sessionDate", formatDate(p.SessionDate)).
		Set("location", p.Location)

	if len(p.Guests) > 0 {
		guests, err := json.Marshal(p.Guests)
		if err != nil {
			return nil, fmt.Errorf("encode guests: %w", err)
		}
		form.Set("guests", string(guests))
	}
	if len(p.Candidates) > 0 {
		candidates, err := json.Marshal(p.Candidates)
		if err != nil {
			return nil, fmt.Errorf("encode candidates: %w", err)
		}
		form.Set("candidates", string(candidates))
	}
	for _, doc := range documents {
		form.AddFile(doc)
	}

	var created entities.Session
	if err := r.client.PostMultipart(ctx, "/sessions", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *SessionRepository) CompleteSession(ctx context.Context, id int64, documents []backend.FilePart) error {
	form := backend.NewForm()
	for _, doc := range documents {
		form.AddFile(doc)
	}
	return r.client.PutMultipart(ctx, fmt.Sprintf("/sessions/%d/complete", id), form, nil)
}

func (r *SessionRepository) GetDocuments(ctx context.Context, id int64) ([]entities.DocumentTracking, error) {
	var docs []entities.DocumentTracking
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/sessions/%d/documents", id), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *SessionRepository) DownloadDocument(ctx context.Context, id int64, documentType string) (*backend.File, error) {
	return r.client.Download(ctx, fmt.Sprintf("/sessions/%d/documents/%s", id, url.PathEscape(documentType)))
}
