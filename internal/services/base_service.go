package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"association-console/internal/backend"
	"association-console/pkg/eventbus"
	"association-console/pkg/validation"
)

// EventPublisher is satisfied by *eventbus.Bus.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, eventbus.Event) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

// openedFiles closes every file opened for one backend submission.
type openedFiles []io.Closer

func (o openedFiles) Close() {
	for _, c := range o {
		_ = c.Close()
	}
}

// openUpload validates an uploaded file against the rules of uploadContext
// and opens it as a multipart part named field.
func openUpload(field string, fh *multipart.FileHeader, uploadContext string) (backend.FilePart, io.Closer, error) {
	if err := validation.ValidateFile(field, fh, uploadContext); err != nil {
		return backend.FilePart{}, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return backend.FilePart{}, nil, fmt.Errorf("open %s: %w", field, err)
	}
	return backend.FilePart{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: contentTypeOf(f, fh.Filename),
		Content:     f,
	}, f, nil
}

// contentTypeOf sniffs the type and rewinds the file.
func contentTypeOf(f multipart.File, filename string) string {
	head := make([]byte, 512)
	n, _ := f.Read(head)
	_, _ = f.Seek(0, io.SeekStart)
	return validation.DetectMimeType(head[:n], filename)
}
