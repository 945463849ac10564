package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "association-console/pkg/errors"
	"association-console/pkg/listing"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T              `json:"list"`
	Pagination *PaginationMeta  `json:"pagination"`
	Summary    *listing.Summary `json:"summary,omitempty"`
}

type PaginationMeta struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

type errorBody struct {
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessOne writes a single object.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

// SuccessPage writes one page produced by the listing engine.
func SuccessPage[T any](c echo.Context, message string, page listing.Page[T], summary *listing.Summary) error {
	list := page.Items
	if list == nil {
		list = make([]T, 0)
	}

	body := ListBody[T]{
		List: list,
		Pagination: &PaginationMeta{
			TotalCount: uint64(page.Total),
			TotalPages: page.TotalPages,
			Page:       page.Page,
			Limit:      page.Limit,
		},
		Summary: summary,
	}

	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse maps err to a status code and an Arabic message. Field errors
// coming from local validation or from the backend share the same shape.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code, msg, fields := Classify(err)

	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("code", code),
			zap.Error(err),
		)
	} else {
		logger.Warn("request rejected",
			zap.String("uri", c.Request().RequestURI),
			zap.Int("code", code),
			zap.Error(err),
		)
	}

	resp := Response[*errorBody]{Status: false, Message: msg}
	if len(fields) > 0 {
		resp.Body = &errorBody{Fields: fields}
	}
	return c.JSON(code, resp)
}

// Classify returns the status code, the user-facing message and the field
// errors for err.
func Classify(err error) (int, string, map[string]string) {
	var (
		validationErr *apperrors.ValidationError
		backendErr    *apperrors.BackendError
		httpErr       *apperrors.HttpError
		inputErr      *apperrors.InvalidInputError
	)

	switch {
	case errors.As(err, &httpErr):
		var fields map[string]string
		if errors.As(httpErr.Err, &validationErr) {
			fields = validationErr.Fields
		}
		return httpErr.Code, httpErr.Message, fields
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "يرجى تصحيح الحقول المشار إليها", validationErr.Fields
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, inputErr.Message, nil
	case errors.As(err, &backendErr):
		return classifyBackend(backendErr)
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error(), nil
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, err.Error(), nil
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrNoPendingSession):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, apperrors.ErrPendingSessionExists),
		errors.Is(err, apperrors.ErrSessionCompleted),
		errors.Is(err, apperrors.ErrDispatchAlreadyReturned),
		errors.Is(err, apperrors.ErrBatchInProgress):
		return http.StatusConflict, err.Error(), nil
	case errors.Is(err, apperrors.ErrSessionNotOngoing), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, err.Error(), nil
	}
	return http.StatusInternalServerError, apperrors.ErrInternal.Error(), nil
}

func classifyBackend(be *apperrors.BackendError) (int, string, map[string]string) {
	switch be.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		msg := be.Message
		if len(be.Fields) > 0 || msg == "" {
			msg = "يرجى تصحيح الحقول المشار إليها"
		}
		return http.StatusBadRequest, msg, be.Fields
	case http.StatusUnauthorized:
		return http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), nil
	case http.StatusForbidden:
		return http.StatusForbidden, apperrors.ErrForbidden.Error(), nil
	case http.StatusNotFound:
		return http.StatusNotFound, apperrors.ErrNotFound.Error(), nil
	case http.StatusConflict:
		msg := be.Message
		if msg == "" {
			msg = "تعارض مع بيانات موجودة"
		}
		return http.StatusConflict, msg, nil
	}
	return http.StatusBadGateway, apperrors.ErrBackend.Error(), nil
}
