package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	PathPrefix       string
}

const (
	UploadDispatchPDF     = "dispatch_pdf"
	UploadSessionDocument = "session_document"
	UploadLegalFile       = "legal_file"
)

var UploadContexts = map[string]UploadConfig{
	// Signed loan form attached to an equipment dispatch
	UploadDispatchPDF: {
		AllowedMimeTypes: []string{"application/pdf"},
		MaxSizeMB:        5,
		PathPrefix:       "dispatches",
	},
	// Invitations, agendas, minutes, attendance lists...
	UploadSessionDocument: {
		AllowedMimeTypes: []string{"application/pdf"},
		MaxSizeMB:        5,
		PathPrefix:       "session-drafts",
	},
	// Supporting document of a don or an equipment record
	UploadLegalFile: {
		AllowedMimeTypes: []string{
			"application/pdf",
			"image/jpeg", "image/jpg", "image/png",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		MaxSizeMB:  5,
		PathPrefix: "legal",
	},
}
