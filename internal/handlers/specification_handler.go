package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	units "github.com/docker/go-units"
	"github.com/gofiber/fiber/v2"

	"farhan/portfolio-generator/internal/models"
	"farhan/portfolio-generator/internal/pipeline"
	"farhan/portfolio-generator/internal/session"
)

type SpecificationHandler struct {
	pipeline    *pipeline.Pipeline
	sessions    *session.Store
	maxFileSize int64
}

func NewSpecificationHandler(
	p *pipeline.Pipeline,
	sessions *session.Store,
	maxFileSize int64,
) *SpecificationHandler {
	return &SpecificationHandler{
		pipeline:    p,
		sessions:    sessions,
		maxFileSize: maxFileSize,
	}
}

// HandleGenerate handles POST /specification: reads the multipart resume
// upload, extracts its text and runs the first model exchange.
func (h *SpecificationHandler) HandleGenerate(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file provided. Upload a PDF or DOCX file as 'resume'.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %s", units.HumanSize(float64(h.maxFileSize))),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	doc := models.UploadedDocument{
		Name:      fileHeader.Filename,
		MediaType: fileHeader.Header.Get("Content-Type"),
		Data:      data,
	}

	state, err := h.pipeline.GenerateSpecification(c.Context(), h.sessions.Current(), doc)
	if err != nil {
		return stageError(c, err)
	}
	h.sessions.Replace(state)

	log.Printf("📄 Specification generated from %s (%s)", doc.Name, units.HumanSize(float64(len(doc.Data))))

	return c.Status(fiber.StatusCreated).JSON(models.SpecificationResponse{
		SessionID:     state.SessionID.String(),
		ResumeName:    state.ResumeName,
		ResumeChars:   len(state.ResumeText),
		Specification: state.Specification,
	})
}

// HandleUpdate handles PUT /specification: stores a user-edited specification
// used by the next synthesis run. No model call happens here.
func (h *SpecificationHandler) HandleUpdate(c *fiber.Ctx) error {
	var req models.UpdateSpecificationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("invalid request: %v", err),
		})
	}

	state, err := h.pipeline.UpdateSpecification(h.sessions.Current(), req.Specification)
	if err != nil {
		return stageError(c, err)
	}
	h.sessions.Replace(state)

	return c.JSON(models.SpecificationResponse{
		SessionID:     state.SessionID.String(),
		ResumeName:    state.ResumeName,
		ResumeChars:   len(state.ResumeText),
		Specification: state.Specification,
	})
}

// stageError maps pipeline failures to HTTP statuses. Extraction problems are
// the client's to fix, provider failures are a bad gateway, and out-of-order
// stage calls are conflicts.
func stageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pipeline.ErrNoFile):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file provided. Upload a PDF or DOCX file as 'resume'.",
		})
	case errors.Is(err, pipeline.ErrEmptyExtraction):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Could not extract text from the uploaded file. Check the format.",
		})
	case errors.Is(err, pipeline.ErrEmptySpecification):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, pipeline.ErrNoSpecification):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Generate a website specification before this step.",
		})
	case errors.Is(err, pipeline.ErrModelCall):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
