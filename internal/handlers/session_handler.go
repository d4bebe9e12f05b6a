package handlers

import (
	"github.com/gofiber/fiber/v2"

	"farhan/portfolio-generator/internal/models"
	"farhan/portfolio-generator/internal/session"
)

type SessionHandler struct {
	sessions *session.Store
}

func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// HandleGet handles GET /session: which pipeline stages have run and which
// artifacts are available right now.
func (h *SessionHandler) HandleGet(c *fiber.Ctx) error {
	state := h.sessions.Current()

	return c.JSON(models.SessionResponse{
		SessionID:        state.SessionID.String(),
		ResumeName:       state.ResumeName,
		HasResume:        state.HasResume(),
		HasSpecification: state.HasSpecification(),
		HasSite:          state.HasSite(),
		PreviewReady:     state.HasPreview(),
		ArchiveReady:     state.HasArchive(),
		UpdatedAt:        state.UpdatedAt,
	})
}
