package validation

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"association-console/config"
	apperrors "association-console/pkg/errors"
	"association-console/pkg/types"
)

type sampleForm struct {
	Phone       string     `json:"phone" validate:"required,phone8"`
	CIN         string     `json:"cin" validate:"omitempty,cin8"`
	DateOfEntry types.Date `json:"dateOfEntry" validate:"required"`
	DateOfExit  types.Date `json:"dateOfExit" validate:"omitempty,gtefield=DateOfEntry"`
	Nature      string     `json:"nature" validate:"required,oneof=gift testament donation"`
}

func validForm() sampleForm {
	return sampleForm{
		Phone:       "12345678",
		DateOfEntry: types.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		Nature:      "gift",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestIsPhone(t *testing.T) {
	accepted := []string{"12345678", "00000000", "98765432"}
	rejected := []string{"1234567", "123456789", "", "1234567a", "+2161234", "1234 5678", "١٢٣٤٥٦٧٨"}

	for _, p := range accepted {
		assert.True(t, IsPhone(p), p)
	}
	for _, p := range rejected {
		assert.False(t, IsPhone(p), p)
	}
}

func TestValidate_OK(t *testing.T) {
	v := New()
	form := validForm()
	form.DateOfExit = form.DateOfEntry
	assert.NoError(t, v.Validate(&form))
}

func TestValidate_FieldMessages(t *testing.T) {
	v := New()
	form := validForm()
	form.Phone = "1234567"
	form.CIN = "12"
	form.Nature = "loan"

	fields := fieldsOf(t, v.Validate(&form))
	assert.Contains(t, fields["phone"], "8")
	assert.Contains(t, fields, "cin")
	assert.Contains(t, fields["nature"], "gift")
	assert.NotContains(t, fields, "dateOfEntry")
}

func TestValidate_RequiredDate(t *testing.T) {
	v := New()
	form := validForm()
	form.DateOfEntry = types.Date{}

	fields := fieldsOf(t, v.Validate(&form))
	assert.Equal(t, arMessages["required"], fields["dateOfEntry"])
}

func TestValidate_ExitBeforeEntry(t *testing.T) {
	v := New()
	form := validForm()
	form.DateOfExit = types.NewDate(form.DateOfEntry.AddDate(0, 0, -1))

	fields := fieldsOf(t, v.Validate(&form))
	assert.Contains(t, fields["dateOfExit"], "dateOfEntry")
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func pdfOfSize(size int) []byte {
	head := []byte("%PDF-1.4\n")
	return append(head, bytes.Repeat([]byte("0"), size-len(head))...)
}

func TestValidateFile_PDF(t *testing.T) {
	ok := fileHeader(t, "form.pdf", pdfOfSize(4<<20))
	assert.NoError(t, ValidateFile("pdf", ok, config.UploadDispatchPDF))

	tooBig := fileHeader(t, "form.pdf", pdfOfSize(5<<20+1))
	fields := fieldsOf(t, ValidateFile("pdf", tooBig, config.UploadDispatchPDF))
	assert.Contains(t, fields["pdf"], "5")

	png := fileHeader(t, "scan.pdf", append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...))
	fields = fieldsOf(t, ValidateFile("pdf", png, config.UploadDispatchPDF))
	assert.Contains(t, fields["pdf"], "PDF")

	fields = fieldsOf(t, ValidateFile("pdf", nil, config.UploadDispatchPDF))
	assert.NotEmpty(t, fields["pdf"])
}

func TestValidateFile_LegalFileAcceptsImagesAndWord(t *testing.T) {
	png := fileHeader(t, "deed.png", append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...))
	assert.NoError(t, ValidateFile("legalFile", png, config.UploadLegalFile))

	docx := fileHeader(t, "deed.docx", append([]byte("PK\x03\x04"), make([]byte, 64)...))
	assert.NoError(t, ValidateFile("legalFile", docx, config.UploadLegalFile))

	doc := fileHeader(t, "deed.doc", append(append([]byte{}, oleSignature...), make([]byte, 64)...))
	assert.NoError(t, ValidateFile("legalFile", doc, config.UploadLegalFile))

	text := fileHeader(t, "deed.txt", []byte("plain text"))
	assert.Error(t, ValidateFile("legalFile", text, config.UploadLegalFile))
}

func TestDetectMimeType(t *testing.T) {
	assert.Equal(t, "application/pdf", DetectMimeType([]byte("%PDF-1.7"), "x.PDF"))
	assert.Equal(t, mimeDocx, DetectMimeType([]byte("PK\x03\x04"), "x.DOCX"))
	assert.Equal(t, "application/zip", DetectMimeType([]byte("PK\x03\x04"), "x.zip"))
	assert.Equal(t, http.DetectContentType([]byte("hello")), DetectMimeType([]byte("hello"), "x.doc"))
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
	assert.Equal(t, map[string]string{"pdf": "x"}, FieldErrors(apperrors.FieldError("pdf", "x")))
}
