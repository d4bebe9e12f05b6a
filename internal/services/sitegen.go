package services

import (
	"context"
	"fmt"
	"strings"

	"farhan/portfolio-generator/internal/models"
)

// SiteService turns a website specification into the three source files of a
// static portfolio site.
type SiteService interface {
	Synthesize(ctx context.Context, specText string) (models.SiteBundle, models.ParseReport, error)
}

type siteService struct {
	model   ChatModel
	prompts *PromptBuilder
}

func NewSiteService(model ChatModel, prompts *PromptBuilder) SiteService {
	return &siteService{
		model:   model,
		prompts: prompts,
	}
}

// Synthesize runs the second model exchange and splits the delimited
// response. Only the model call itself can fail; segment extraction problems
// are reported per segment, with the affected files left empty.
func (s *siteService) Synthesize(ctx context.Context, specText string) (models.SiteBundle, models.ParseReport, error) {
	if strings.TrimSpace(specText) == "" {
		return models.SiteBundle{}, models.ParseReport{}, fmt.Errorf("website specification is empty")
	}

	raw, err := s.model.Ask(ctx, s.prompts.WebsiteSystem(), s.prompts.WebsiteUser(specText))
	if err != nil {
		return models.SiteBundle{}, models.ParseReport{}, fmt.Errorf("failed to generate website code: %w", err)
	}

	bundle, report := ParseSiteBundle(raw)
	return bundle, report, nil
}
