package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	"association-console/config"
	"association-console/internal/backend"
	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/events"
	"association-console/internal/repositories"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/filestorage"
	"association-console/pkg/listing"
	"association-console/pkg/metrics"
	"association-console/pkg/types"
	"association-console/pkg/utils"
	"association-console/pkg/validation"
)

const missingFileMessage = "يرجى اختيار ملف"

type SessionServiceInterface interface {
	SelectType(sessionType string) (*dto.SessionFormDTO, error)
	CreateSession(ctx context.Context, payload dto.CreateSessionDTO, files map[string]*multipart.FileHeader) (*entities.Session, error)
	Pending(ctx context.Context) (*dto.PendingSessionDTO, error)
	CompleteSession(ctx context.Context, id int64, files map[string]*multipart.FileHeader) error
	Completed(ctx context.Context, q listing.Query) (listing.Page[entities.Session], listing.Summary, error)
	Documents(ctx context.Context, id int64) ([]entities.DocumentTracking, error)
	DownloadDocument(ctx context.Context, id int64, documentType string) (*backend.File, error)
	Draft(ctx context.Context, id int64) (*dto.SessionDraftDTO, error)
	DiscardDraft(ctx context.Context, id int64) error
}

type SessionService struct {
	sessionRepository repositories.SessionRepositoryInterface
	draftRepository   repositories.DraftRepositoryInterface
	fileStorage       filestorage.FileStorageInterface
	draftTTL          time.Duration
	bus               EventPublisher
	logger            *zap.Logger
	today             func() types.Date
}

func NewSessionService(
	sessionRepository repositories.SessionRepositoryInterface,
	draftRepository repositories.DraftRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	draftTTL time.Duration,
	bus EventPublisher,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepository: sessionRepository,
		draftRepository:   draftRepository,
		fileStorage:       fileStorage,
		draftTTL:          draftTTL,
		bus:               publisherOrNop(bus),
		logger:            logger.Named("session_service"),
		today:             types.Today,
	}
}

// SelectType describes the creation form of a session type.
func (s *SessionService) SelectType(sessionType string) (*dto.SessionFormDTO, error) {
	form := &dto.SessionFormDTO{
		SessionType:       sessionType,
		RequiredDocuments: []string{entities.DocInvitation, entities.DocAgenda},
		AllowsGuests:      true,
	}
	switch sessionType {
	case entities.SessionOrdinary:
	case entities.SessionExtraordinary:
		form.RequiredDocuments = append(form.RequiredDocuments, entities.DocReason)
	case entities.SessionElectoral:
		form.RequiredDocuments = append(form.RequiredDocuments, entities.DocCandidatesList)
		form.NeedsCandidates = true
	default:
		return nil, apperrors.FieldError("sessionType", "نوع الجلسة غير معروف")
	}
	return form, nil
}

func (s *SessionService) CreateSession(ctx context.Context, payload dto.CreateSessionDTO, files map[string]*multipart.FileHeader) (*entities.Session, error) {
	form, err := s.SelectType(payload.SessionType)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	if form.NeedsCandidates && len(payload.Candidates) == 0 {
		fields["candidates"] = "يجب إضافة مترشح واحد على الأقل"
	}
	if !form.NeedsCandidates {
		payload.Candidates = nil
	}
	for _, doc := range form.RequiredDocuments {
		if err := validation.ValidateFile(doc, files[doc], config.UploadSessionDocument); err != nil {
			if !mergeFieldErrors(fields, err) {
				return nil, err
			}
		}
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	pending, err := s.sessionRepository.GetPending(ctx)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, apperrors.ErrPendingSessionExists
	}

	parts := make([]backend.FilePart, 0, len(form.RequiredDocuments))
	var opened openedFiles
	defer func() { opened.Close() }()
	for _, doc := range form.RequiredDocuments {
		part, closer, err := openUpload(doc, files[doc], config.UploadSessionDocument)
		if err != nil {
			return nil, err
		}
		opened = append(opened, closer)
		parts = append(parts, part)
	}

	created, err := s.sessionRepository.CreateSession(ctx, payload, parts)
	if err != nil {
		s.logger.Error("create session failed", zap.String("type", payload.SessionType), zap.Error(err))
		return nil, err
	}
	s.logger.Info("session created",
		zap.Int64("id", created.ID),
		zap.String("type", payload.SessionType),
		zap.String("date", payload.SessionDate.String()),
	)
	return created, nil
}

// Pending returns the pending session with its phase, or ErrNoPendingSession.
func (s *SessionService) Pending(ctx context.Context) (*dto.PendingSessionDTO, error) {
	pending, err := s.sessionRepository.GetPending(ctx)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, apperrors.ErrNoPendingSession
	}
	return &dto.PendingSessionDTO{Session: *pending, Phase: pending.Phase(s.today())}, nil
}

// CompleteSession submits the four completion documents in one request.
// Documents missing from files are taken from the draft of a previous failed
// attempt. When validation or the submission fails, the valid new uploads
// are staged in the draft so the next attempt only needs the others.
func (s *SessionService) CompleteSession(ctx context.Context, id int64, files map[string]*multipart.FileHeader) error {
	pending, err := s.sessionRepository.GetPending(ctx)
	if err != nil {
		return err
	}
	if pending == nil {
		return apperrors.ErrNoPendingSession
	}
	if pending.ID != id {
		return apperrors.ErrNotFound
	}
	switch pending.Phase(s.today()) {
	case entities.PhasePending:
		return apperrors.ErrSessionNotOngoing
	case entities.PhaseCompleted:
		return apperrors.ErrSessionCompleted
	}

	draft := s.loadDraft(ctx, id)

	fields := make(map[string]string)
	fresh := make(map[string]*multipart.FileHeader)
	for _, doc := range entities.CompletionDocuments {
		fh := files[doc]
		if fh == nil {
			if _, staged := draft.Documents[doc]; !staged {
				fields[doc] = missingFileMessage
			}
			continue
		}
		if err := validation.ValidateFile(doc, fh, config.UploadSessionDocument); err != nil {
			if !mergeFieldErrors(fields, err) {
				return err
			}
			continue
		}
		fresh[doc] = fh
	}
	if len(fields) > 0 {
		s.stage(ctx, draft, fresh)
		return apperrors.NewValidationError(fields)
	}

	parts, opened, err := s.completionParts(draft, fresh)
	defer opened.Close()
	if err != nil {
		return err
	}

	if err := s.sessionRepository.CompleteSession(ctx, id, parts); err != nil {
		s.logger.Error("complete session failed", zap.Int64("id", id), zap.Error(err))
		s.stage(ctx, draft, fresh)
		return err
	}

	s.discard(ctx, draft)
	metrics.SessionsCompletedTotal.Inc()
	s.logger.Info("session completed", zap.Int64("id", id), zap.String("type", pending.SessionType))
	s.bus.Publish(ctx, events.SessionCompletedEvent{
		SessionID:   id,
		SessionType: pending.SessionType,
		Actor:       utils.GetUserNameFromCtx(ctx),
	})
	return nil
}

func (s *SessionService) completionParts(draft *entities.SessionDraft, fresh map[string]*multipart.FileHeader) ([]backend.FilePart, openedFiles, error) {
	parts := make([]backend.FilePart, 0, len(entities.CompletionDocuments))
	var opened openedFiles
	for _, doc := range entities.CompletionDocuments {
		if fh, ok := fresh[doc]; ok {
			part, closer, err := openUpload(doc, fh, config.UploadSessionDocument)
			if err != nil {
				return nil, opened, err
			}
			opened = append(opened, closer)
			parts = append(parts, part)
			continue
		}

		staged := draft.Documents[doc]
		f, err := s.fileStorage.Open(staged.Path)
		if err != nil {
			s.logger.Warn("staged document is gone", zap.String("document", doc), zap.String("path", staged.Path), zap.Error(err))
			return nil, opened, apperrors.FieldError(doc, missingFileMessage)
		}
		opened = append(opened, f)
		parts = append(parts, backend.FilePart{
			Field:       doc,
			Filename:    staged.FileName,
			ContentType: staged.ContentType,
			Content:     f,
		})
	}
	return parts, opened, nil
}

// loadDraft never fails: a broken or unreachable draft store only means
// nothing is staged.
func (s *SessionService) loadDraft(ctx context.Context, id int64) *entities.SessionDraft {
	draft, err := s.draftRepository.GetDraft(ctx, id)
	if err != nil {
		s.logger.Warn("load session draft failed", zap.Int64("session", id), zap.Error(err))
	}
	if draft == nil {
		draft = &entities.SessionDraft{SessionID: id}
	}
	if draft.Documents == nil {
		draft.Documents = make(map[string]entities.StagedDocument)
	}
	return draft
}

// stage copies the valid uploads into the draft. Errors are logged only: the
// caller is already reporting a more relevant failure.
func (s *SessionService) stage(ctx context.Context, draft *entities.SessionDraft, fresh map[string]*multipart.FileHeader) {
	if len(fresh) == 0 {
		return
	}
	prefix := config.UploadContexts[config.UploadSessionDocument].PathPrefix

	for doc, fh := range fresh {
		path, contentType, err := s.saveUpload(fh, prefix)
		if err != nil {
			s.logger.Warn("stage document failed", zap.String("document", doc), zap.Error(err))
			continue
		}
		if old, ok := draft.Documents[doc]; ok {
			_ = s.fileStorage.Delete(old.Path)
		}
		draft.Documents[doc] = entities.StagedDocument{
			Path:        path,
			FileName:    fh.Filename,
			ContentType: contentType,
			Size:        fh.Size,
			StagedAt:    time.Now().UTC(),
		}
	}
	draft.UpdatedAt = time.Now().UTC()

	if err := s.draftRepository.SaveDraft(ctx, draft, s.draftTTL); err != nil {
		s.logger.Warn("save session draft failed", zap.Int64("session", draft.SessionID), zap.Error(err))
		return
	}
	s.logger.Info("session draft saved", zap.Int64("session", draft.SessionID), zap.Int("documents", len(draft.Documents)))
}

func (s *SessionService) saveUpload(fh *multipart.FileHeader, prefix string) (string, string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	contentType := contentTypeOf(f, fh.Filename)
	path, err := s.fileStorage.Save(f, fh.Filename, prefix)
	return path, contentType, err
}

func (s *SessionService) discard(ctx context.Context, draft *entities.SessionDraft) {
	for doc, staged := range draft.Documents {
		if err := s.fileStorage.Delete(staged.Path); err != nil {
			s.logger.Warn("delete staged document failed", zap.String("document", doc), zap.Error(err))
		}
	}
	if err := s.draftRepository.DeleteDraft(ctx, draft.SessionID); err != nil {
		s.logger.Warn("delete session draft failed", zap.Int64("session", draft.SessionID), zap.Error(err))
	}
}

func (s *SessionService) Draft(ctx context.Context, id int64) (*dto.SessionDraftDTO, error) {
	draft, err := s.draftRepository.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &dto.SessionDraftDTO{
		SessionID: id,
		Documents: make([]dto.DraftDocumentDTO, 0),
		Missing:   make([]string, 0),
	}
	for _, doc := range entities.CompletionDocuments {
		staged, ok := lookupStaged(draft, doc)
		if !ok {
			out.Missing = append(out.Missing, doc)
			continue
		}
		out.Documents = append(out.Documents, dto.DraftDocumentDTO{
			DocumentType: doc,
			FileName:     staged.FileName,
			Size:         staged.Size,
			StagedAt:     staged.StagedAt,
		})
	}
	return out, nil
}

func lookupStaged(draft *entities.SessionDraft, doc string) (entities.StagedDocument, bool) {
	if draft == nil {
		return entities.StagedDocument{}, false
	}
	staged, ok := draft.Documents[doc]
	return staged, ok
}

func (s *SessionService) DiscardDraft(ctx context.Context, id int64) error {
	draft, err := s.draftRepository.GetDraft(ctx, id)
	if err != nil {
		return err
	}
	if draft == nil {
		return nil
	}
	s.discard(ctx, draft)
	return nil
}

func (s *SessionService) Completed(ctx context.Context, q listing.Query) (listing.Page[entities.Session], listing.Summary, error) {
	sessions, err := s.sessionRepository.GetCompleted(ctx)
	if err != nil {
		return listing.Page[entities.Session]{}, listing.Summary{}, err
	}
	page, summary := listing.ApplyWithSummary(sessions, q, nil)
	return page, summary, nil
}

func (s *SessionService) Documents(ctx context.Context, id int64) ([]entities.DocumentTracking, error) {
	return s.sessionRepository.GetDocuments(ctx, id)
}

func (s *SessionService) DownloadDocument(ctx context.Context, id int64, documentType string) (*backend.File, error) {
	if !isKnownDocument(documentType) {
		return nil, apperrors.NewInvalidInputError("نوع الوثيقة غير معروف: %s", documentType)
	}
	return s.sessionRepository.DownloadDocument(ctx, id, documentType)
}

func isKnownDocument(doc string) bool {
	switch doc {
	case entities.DocInvitation, entities.DocAgenda, entities.DocReason, entities.DocCandidatesList,
		entities.DocMinutes, entities.DocPressReport, entities.DocMembersAttendance, entities.DocGuestsAttendance:
		return true
	}
	return false
}

// mergeFieldErrors copies the fields of a ValidationError into fields and
// reports whether err was one.
func mergeFieldErrors(fields map[string]string, err error) bool {
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	for k, v := range verr.Fields {
		fields[k] = v
	}
	return true
}
