package dto

import (
	"time"

	"association-console/internal/entities"
	"association-console/pkg/types"
)

type GuestDTO struct {
	FullName     string `json:"fullName" validate:"required,notblank"`
	Role         string `json:"role,omitempty" validate:"omitempty,max=100"`
	Organization string `json:"organization,omitempty" validate:"omitempty,max=150"`
}

type CandidateDTO struct {
	FullName string `json:"fullName" validate:"required,notblank"`
	CIN      string `json:"cin" validate:"required,cin8"`
	Phone    string `json:"phone" validate:"required,phone8"`
	Position string `json:"position" validate:"required,notblank"`
}

// CreateSessionDTO is bound from the multipart wizard form. Guests and
// candidates arrive as JSON encoded form fields.
type CreateSessionDTO struct {
	SessionType    string         `json:"sessionType" form:"sessionType" validate:"required,oneof=Ordinary Electoral Extraordinary"`
	SessionDate    types.Date     `json:"sessionDate" form:"sessionDate" validate:"required"`
	Location       string         `json:"location" form:"location" validate:"required,notblank"`
	GuestsJSON     string         `json:"-" form:"guests"`
	CandidatesJSON string         `json:"-" form:"candidates"`
	Guests         []GuestDTO     `json:"guests" form:"-" validate:"dive"`
	Candidates     []CandidateDTO `json:"candidates" form:"-" validate:"dive"`
}

// SessionFormDTO describes the wizard step shown after the type selection.
type SessionFormDTO struct {
	SessionType       string   `json:"sessionType"`
	RequiredDocuments []string `json:"requiredDocuments"`
	NeedsCandidates   bool     `json:"needsCandidates"`
	AllowsGuests      bool     `json:"allowsGuests"`
}

type DraftDocumentDTO struct {
	DocumentType string    `json:"documentType"`
	FileName     string    `json:"fileName"`
	Size         int64     `json:"size"`
	StagedAt     time.Time `json:"stagedAt"`
}

// SessionDraftDTO lists the completion documents kept after a failed attempt.
type SessionDraftDTO struct {
	SessionID int64              `json:"sessionId"`
	Documents []DraftDocumentDTO `json:"documents"`
	Missing   []string           `json:"missing"`
}

// PendingSessionDTO is the pending session with its derived phase.
type PendingSessionDTO struct {
	entities.Session
	Phase string `json:"phase"`
}
