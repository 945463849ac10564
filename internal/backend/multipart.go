package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// FilePart is one file of a multipart submission.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Content     io.Reader
}

// Form is a multipart/form-data body. Fields keep their insertion order.
type Form struct {
	keys   []string
	values map[string][]string
	Files  []FilePart
}

func NewForm() *Form {
	return &Form{values: make(map[string][]string)}
}

// Set adds a field. Empty values are skipped so that optional fields stay
// absent instead of being sent as "".
func (f *Form) Set(key, value string) *Form {
	if value == "" {
		return f
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = append(f.values[key], value)
	return f
}

func (f *Form) AddFile(part FilePart) *Form {
	f.Files = append(f.Files, part)
	return f
}

func (f *Form) Get(key string) string {
	if v := f.values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *Form) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, k := range f.keys {
		for _, v := range f.values[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}

	for _, fp := range f.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(fp.Field), escapeQuotes(fp.Filename)))
		ct := fp.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(pw, fp.Content); err != nil {
			return nil, "", fmt.Errorf("copy %s: %w", fp.Field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *Client) PostMultipart(ctx context.Context, path string, form *Form, out interface{}) error {
	return c.sendMultipart(ctx, http.MethodPost, path, form, out)
}

func (c *Client) PutMultipart(ctx context.Context, path string, form *Form, out interface{}) error {
	return c.sendMultipart(ctx, http.MethodPut, path, form, out)
}

func (c *Client) sendMultipart(ctx context.Context, method, path string, form *Form, out interface{}) error {
	body, contentType, err := form.encode()
	if err != nil {
		return fmt.Errorf("encode multipart %s %s: %w", method, path, err)
	}
	ctx, cancel := c.exchangeContext(ctx)
	defer cancel()

	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
