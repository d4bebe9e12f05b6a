package services

import (
	"context"
	"fmt"
	"strings"
)

// SpecificationService turns raw resume text into an editable website
// specification through a single model exchange.
type SpecificationService interface {
	Generate(ctx context.Context, resumeText string) (string, error)
}

type specificationService struct {
	model   ChatModel
	prompts *PromptBuilder
}

func NewSpecificationService(model ChatModel, prompts *PromptBuilder) SpecificationService {
	return &specificationService{
		model:   model,
		prompts: prompts,
	}
}

// Generate sends the fixed system prompt plus the resume text verbatim and
// returns the model output as-is. The text is not validated or normalized;
// the user reviews it before anything downstream consumes it.
func (s *specificationService) Generate(ctx context.Context, resumeText string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", fmt.Errorf("resume text is empty")
	}

	spec, err := s.model.Ask(ctx, s.prompts.SpecificationSystem(), s.prompts.SpecificationUser(resumeText))
	if err != nil {
		return "", fmt.Errorf("failed to build website specification: %w", err)
	}

	return spec, nil
}
