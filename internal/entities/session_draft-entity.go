package entities

import "time"

// StagedDocument is a completion document kept on disk after a failed
// submission.
type StagedDocument struct {
	Path        string    `json:"path"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	StagedAt    time.Time `json:"stagedAt"`
}

// SessionDraft is the manifest of the staged completion documents of a
// session, keyed by document type.
type SessionDraft struct {
	SessionID int64                     `json:"sessionId"`
	Documents map[string]StagedDocument `json:"documents"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}
