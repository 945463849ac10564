package entities

import (
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"association-console/pkg/types"
)

const (
	SessionOrdinary      = "Ordinary"
	SessionElectoral     = "Electoral"
	SessionExtraordinary = "Extraordinary"
)

var SessionTypes = []string{SessionOrdinary, SessionElectoral, SessionExtraordinary}

const (
	PhasePending   = "pending"
	PhaseOngoing   = "ongoing"
	PhaseCompleted = "completed"
)

// Document types of a session.
const (
	DocInvitation     = "invitation"
	DocAgenda         = "agenda"
	DocReason         = "reason"
	DocCandidatesList = "candidatesList"

	DocMinutes           = "minutes"
	DocPressReport       = "pressReport"
	DocMembersAttendance = "membersAttendance"
	DocGuestsAttendance  = "guestsAttendance"
)

// CompletionDocuments are uploaded together when a session is closed.
var CompletionDocuments = []string{DocMinutes, DocPressReport, DocMembersAttendance, DocGuestsAttendance}

type Guest struct {
	FullName     string      `json:"fullName"`
	Role         null.String `json:"role"`
	Organization null.String `json:"organization"`
}

type Candidate struct {
	FullName string `json:"fullName"`
	CIN      string `json:"cin"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

type DocumentTracking struct {
	SessionID    int64       `json:"sessionId"`
	DocumentType string      `json:"documentType"`
	Required     bool        `json:"required"`
	Uploaded     bool        `json:"uploaded"`
	FilePath     null.String `json:"filePath"`
}

type Session struct {
	ID          int64              `json:"id"`
	SessionType string             `json:"sessionType"`
	SessionDate types.Date         `json:"sessionDate"`
	Location    string             `json:"location"`
	Guests      []Guest            `json:"guests"`
	Candidates  []Candidate        `json:"candidates"`
	Documents   []DocumentTracking `json:"documents"`
	Status      string             `json:"status"`
}

var SessionSearchFields = []string{"sessionType", "location"}

// Phase derives the wizard phase. A session is pending until its date,
// ongoing from that day on, and completed once the backend says so.
func (s Session) Phase(today types.Date) string {
	if strings.EqualFold(s.Status, PhaseCompleted) {
		return PhaseCompleted
	}
	if s.SessionDate.Valid() && s.SessionDate.Midnight().After(today.Midnight()) {
		return PhasePending
	}
	return PhaseOngoing
}

func (s Session) Field(name string) string {
	switch name {
	case "id":
		return strconv.FormatInt(s.ID, 10)
	case "sessionType":
		return s.SessionType
	case "location":
		return s.Location
	case "status":
		return s.Status
	case "sessionDate":
		return s.SessionDate.String()
	}
	return ""
}

// StatusValue is the session type so list views can filter on it.
func (s Session) StatusValue() string { return s.SessionType }

func (s Session) DateValue() (time.Time, bool) {
	return s.SessionDate.Time, s.SessionDate.Valid()
}
