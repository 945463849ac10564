package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"association-console/internal/backend"
	"association-console/internal/services"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/listing"
	"association-console/pkg/utils"
	"association-console/pkg/validation"
)

func parseID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidInputError("المعرف غير صالح: %s", ctx.Param("id"))
	}
	return id, nil
}

// optionalFile returns nil when the part is absent.
func optionalFile(ctx echo.Context, field string) (*multipart.FileHeader, error) {
	fh, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInvalidInputError("تعذر قراءة الملف المرفق")
	}
	return fh, nil
}

// formFiles picks the first file of each named part. Absent parts are left out.
func formFiles(ctx echo.Context, fields []string) (map[string]*multipart.FileHeader, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, apperrors.NewInvalidInputError("يجب إرسال النموذج مع الملفات")
	}
	files := make(map[string]*multipart.FileHeader, len(fields))
	for _, f := range fields {
		if fhs := form.File[f]; len(fhs) > 0 {
			files[f] = fhs[0]
		}
	}
	return files, nil
}

func listQuery(ctx echo.Context, searchFields []string) (listing.Query, error) {
	return utils.ParseListQuery(ctx.QueryParams(), searchFields)
}

// streamFile copies a backend download to the client as an attachment.
func streamFile(ctx echo.Context, file *backend.File) error {
	defer file.Body.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	h := ctx.Response().Header()
	h.Set(echo.HeaderContentDisposition, attachment(file.Name))
	if file.Size > 0 {
		h.Set(echo.HeaderContentLength, strconv.FormatInt(file.Size, 10))
	}
	return ctx.Stream(http.StatusOK, contentType, file.Body)
}

func writeReport(ctx echo.Context, kind string, report services.Report) error {
	var buf bytes.Buffer
	if err := services.WriteXLSX(&buf, report); err != nil {
		return fmt.Errorf("export %s: %w", kind, err)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, attachment(services.ReportFileName(kind)))
	return ctx.Blob(http.StatusOK, services.XLSXContentType, buf.Bytes())
}

func attachment(name string) string {
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", name, url.PathEscape(name))
}

// withFileErrors adds the error of an upload to the field errors of the form,
// so one answer lists every invalid field.
func withFileErrors(formErr error, field string, fh *multipart.FileHeader, contextName string) error {
	fields := validation.FieldErrors(formErr)
	if fields == nil {
		return formErr
	}
	fileErr := validation.ValidateFile(field, fh, contextName)
	if fileErr == nil {
		return formErr
	}
	fileFields := validation.FieldErrors(fileErr)
	if fileFields == nil {
		return fileErr
	}
	merged := make(map[string]string, len(fields)+len(fileFields))
	for k, v := range fields {
		merged[k] = v
	}
	for k, v := range fileFields {
		merged[k] = v
	}
	return apperrors.NewValidationError(merged)
}
