package validation

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"association-console/config"
	apperrors "association-console/pkg/errors"
)

const (
	mimeDoc  = "application/msword"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// ValidateFile checks the size and the sniffed MIME type of an upload.
// contextName is a key of config.UploadContexts. The error is a ValidationError
// keyed by field so the console shows it under the file input.
func ValidateFile(field string, fileHeader *multipart.FileHeader, contextName string) error {
	if fileHeader == nil {
		return apperrors.FieldError(field, "يرجى اختيار ملف")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", field, err)
	}
	defer file.Close()

	return ValidateReader(field, fileHeader.Filename, fileHeader.Size, file, contextName)
}

// ValidateReader applies the rules of contextName to an already opened file.
// The read position of file is restored.
func ValidateReader(field, filename string, size int64, file io.ReadSeeker, contextName string) error {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return fmt.Errorf("unknown upload context %q", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if size > maxSizeBytes {
			return apperrors.FieldError(field,
				fmt.Sprintf("حجم الملف (%.2f ميغابايت) يتجاوز الحد المسموح به (%d ميغابايت)", float64(size)/1024/1024, rules.MaxSizeMB))
		}
	}

	// Magic numbers
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read %s: %w", field, err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", field, err)
	}

	mimeType := DetectMimeType(buffer[:n], filename)
	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return apperrors.FieldError(field, "نوع الملف غير مسموح به: "+allowedLabel(rules.AllowedMimeTypes))
	}
	return nil
}

// DetectMimeType sniffs the content. Word documents need the extension as a
// hint: .docx sniffs as a zip archive and .doc as an OLE container.
func DetectMimeType(head []byte, filename string) string {
	mimeType := http.DetectContentType(head)
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case mimeType == "application/zip" && ext == ".docx":
		return mimeDocx
	case bytes.HasPrefix(head, oleSignature) && ext == ".doc":
		return mimeDoc
	}
	return mimeType
}

func allowedLabel(mimes []string) string {
	var labels []string
	seen := map[string]bool{}
	for _, m := range mimes {
		var l string
		switch m {
		case "application/pdf":
			l = "PDF"
		case "image/jpeg", "image/jpg":
			l = "JPEG"
		case "image/png":
			l = "PNG"
		case mimeDoc, mimeDocx:
			l = "Word"
		default:
			l = m
		}
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	return strings.Join(labels, "، ")
}
