package backend

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path"
)

// File is a downloaded document. The caller closes Body.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// Download streams a file answer of the backend.
func (c *Client) Download(ctx context.Context, urlPath string) (*File, error) {
	resp, err := c.do(ctx, http.MethodGet, urlPath, nil, "")
	if err != nil {
		return nil, err
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &File{
		Name:        filenameOf(resp, urlPath),
		ContentType: ct,
		Size:        resp.ContentLength,
		Body:        resp.Body,
	}, nil
}

func filenameOf(resp *http.Response, urlPath string) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return path.Base(urlPath)
}
