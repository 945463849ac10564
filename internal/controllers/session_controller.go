package controllers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"association-console/internal/dto"
	"association-console/internal/entities"
	"association-console/internal/services"
	"association-console/pkg/api"
	apperrors "association-console/pkg/errors"
)

// creationDocuments are all the files a creation form may carry. The service
// picks the ones the session type requires.
var creationDocuments = []string{
	entities.DocInvitation,
	entities.DocAgenda,
	entities.DocReason,
	entities.DocCandidatesList,
}

type SessionController struct {
	sessionService services.SessionServiceInterface
	logger         *zap.Logger
}

func NewSessionController(sessionService services.SessionServiceInterface, logger *zap.Logger) *SessionController {
	return &SessionController{sessionService: sessionService, logger: logger}
}

// SelectType is the first wizard step.
func (c *SessionController) SelectType(ctx echo.Context) error {
	form, err := c.sessionService.SelectType(ctx.Param("type"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب نموذج الجلسة بنجاح", form)
}

func (c *SessionController) CreateSession(ctx echo.Context) error {
	var payload dto.CreateSessionDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewInvalidInputError("بيانات النموذج غير صالحة"), c.logger)
	}
	if err := decodeList(payload.GuestsJSON, &payload.Guests); err != nil {
		return api.ErrorResponse(ctx, apperrors.FieldError("guests", "قائمة الضيوف غير صالحة"), c.logger)
	}
	if err := decodeList(payload.CandidatesJSON, &payload.Candidates); err != nil {
		return api.ErrorResponse(ctx, apperrors.FieldError("candidates", "قائمة المترشحين غير صالحة"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	files, err := formFiles(ctx, creationDocuments)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	session, err := c.sessionService.CreateSession(ctx.Request().Context(), payload, files)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "تم إنشاء الجلسة بنجاح", session)
}

func (c *SessionController) GetPending(ctx echo.Context) error {
	pending, err := c.sessionService.Pending(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب الجلسة المعلقة بنجاح", pending)
}

// CompleteSession accepts a request without any file when every document
// is already staged in the draft.
func (c *SessionController) CompleteSession(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	files := map[string]*multipart.FileHeader{}
	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if files, err = formFiles(ctx, entities.CompletionDocuments); err != nil {
			return api.ErrorResponse(ctx, err, c.logger)
		}
	}

	if err := c.sessionService.CompleteSession(ctx.Request().Context(), id, files); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "تم إتمام الجلسة بنجاح", nil)
}

func (c *SessionController) GetCompleted(ctx echo.Context) error {
	q, err := listQuery(ctx, entities.SessionSearchFields)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	page, _, err := c.sessionService.Completed(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessPage(ctx, "تم جلب الجلسات المكتملة بنجاح", page, nil)
}

func (c *SessionController) GetDocuments(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	docs, err := c.sessionService.Documents(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if docs == nil {
		docs = []entities.DocumentTracking{}
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب وثائق الجلسة بنجاح", docs)
}

func (c *SessionController) DownloadDocument(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	file, err := c.sessionService.DownloadDocument(ctx.Request().Context(), id, ctx.Param("documentType"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return streamFile(ctx, file)
}

func (c *SessionController) GetDraft(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	draft, err := c.sessionService.Draft(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "تم جلب المسودة بنجاح", draft)
}

func (c *SessionController) DiscardDraft(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.sessionService.DiscardDraft(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "تم حذف المسودة بنجاح", nil)
}

func decodeList[T any](raw string, out *[]T) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}
