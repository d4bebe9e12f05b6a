package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// UpdateSpecificationRequest carries a user-edited website specification. The
// edited text replaces the generated one and feeds the next synthesis run.
type UpdateSpecificationRequest struct {
	Specification string `json:"specification" validate:"required"`
}

func (r *UpdateSpecificationRequest) Validate() error {
	return validate.Struct(r)
}

type SpecificationResponse struct {
	SessionID     string `json:"session_id"`
	ResumeName    string `json:"resume_name,omitempty"`
	ResumeChars   int    `json:"resume_chars,omitempty"`
	Specification string `json:"specification"`
}

type SiteResponse struct {
	SessionID    string          `json:"session_id"`
	Report       ParseReport     `json:"report"`
	ArchiveReady bool            `json:"archive_ready"`
	Files        []FileSummary   `json:"files"`
	Markup       *MarkupStats    `json:"markup,omitempty"`
	Preview      PreviewSettings `json:"preview"`
}

type SessionResponse struct {
	SessionID        string    `json:"session_id"`
	ResumeName       string    `json:"resume_name,omitempty"`
	HasResume        bool      `json:"has_resume"`
	HasSpecification bool      `json:"has_specification"`
	HasSite          bool      `json:"has_site"`
	PreviewReady     bool      `json:"preview_ready"`
	ArchiveReady     bool      `json:"archive_ready"`
	UpdatedAt        time.Time `json:"updated_at"`
}
