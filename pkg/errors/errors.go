package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Auth
	ErrEmptyAuthHeader   = errors.New("ترويسة التفويض مفقودة")
	ErrInvalidAuthHeader = errors.New("صيغة ترويسة التفويض غير صحيحة")
	ErrUnauthorized      = errors.New("يجب تسجيل الدخول من جديد")
	ErrForbidden         = errors.New("ليست لديك صلاحية للقيام بهذه العملية")
	ErrTokenNotFound     = errors.New("رمز الدخول غير موجود")

	// Common
	ErrNotFound   = errors.New("السجل غير موجود")
	ErrBadRequest = errors.New("طلب غير صالح")
	ErrInternal   = errors.New("حدث خطأ داخلي، يرجى المحاولة لاحقا")
	ErrBackend    = errors.New("تعذر الاتصال بالخادم، يرجى المحاولة لاحقا")

	// Sessions
	ErrPendingSessionExists = errors.New("توجد جلسة معلقة بالفعل، يجب إتمامها قبل إنشاء جلسة جديدة")
	ErrNoPendingSession     = errors.New("لا توجد جلسة معلقة")
	ErrSessionNotOngoing    = errors.New("لا يمكن إتمام الجلسة قبل موعد انعقادها")
	ErrSessionCompleted     = errors.New("هذه الجلسة مكتملة بالفعل")

	// Dispatches
	ErrDispatchAlreadyReturned = errors.New("تم إرجاع هذه المعدات بالفعل")

	// Equipment
	ErrBatchInProgress = errors.New("عملية إضافة معدات جارية بالفعل، يرجى الانتظار حتى تنتهي")
)

// HttpError carries the status code and the user-facing message of a failed
// request. Err is the underlying cause, logged but never shown.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

// ValidationError holds a field -> message map rendered inline by the console.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// BackendError is a non-2xx answer of the association REST service.
type BackendError struct {
	Status  int
	Method  string
	Path    string
	Message string
	Fields  map[string]string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s %s: %d", e.Method, e.Path, e.Status)
}

// IsNotFound reports whether err is a 404 answer or ErrNotFound.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var be *BackendError
	return errors.As(err, &be) && be.Status == http.StatusNotFound
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
