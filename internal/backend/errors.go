package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unicode"

	apperrors "association-console/pkg/errors"
)

const maxErrorBody = 64 << 10

// problemDetails covers the ASP.NET validation answer and the plain
// {"message": "..."} bodies returned by the controllers of the backend.
type problemDetails struct {
	Title   string          `json:"title"`
	Detail  string          `json:"detail"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

func decodeError(resp *http.Response, method, path string) *apperrors.BackendError {
	be := &apperrors.BackendError{Status: resp.StatusCode, Method: method, Path: path}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	text := strings.TrimSpace(string(data))
	if text == "" {
		return be
	}

	var pd problemDetails
	if err := json.Unmarshal(data, &pd); err != nil {
		// Plain text answer.
		be.Message = truncate(text, 300)
		return be
	}

	switch {
	case pd.Message != "":
		be.Message = pd.Message
	case pd.Detail != "":
		be.Message = pd.Detail
	default:
		be.Message = pd.Title
	}
	be.Fields = decodeFieldErrors(pd.Errors)
	return be
}

// decodeFieldErrors accepts {"Field": ["msg", ...]} and {"Field": "msg"}.
func decodeFieldErrors(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	fields := make(map[string]string)
	var many map[string][]string
	if err := json.Unmarshal(raw, &many); err == nil {
		for k, msgs := range many {
			if len(msgs) > 0 {
				fields[FieldName(k)] = strings.Join(msgs, " ")
			}
		}
	} else {
		var one map[string]string
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil
		}
		for k, msg := range one {
			fields[FieldName(k)] = msg
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// FieldName maps backend keys ("PatientPhone", "$.patientPhone",
// "dto.PatientPhone") to the console field names ("patientPhone").
func FieldName(key string) string {
	key = strings.TrimPrefix(key, "$")
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	if key == "" {
		return key
	}
	r := []rune(key)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
