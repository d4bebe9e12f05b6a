package pipeline

import (
	"context"
	"fmt"
	"strings"

	"farhan/portfolio-generator/internal/models"
	"farhan/portfolio-generator/internal/services"
)

// Pipeline wires the stages behind user actions. Each method runs one stage
// to completion on the calling goroutine and returns the next State; there is
// no queue, no background work and no retry.
type Pipeline struct {
	extractor services.TextExtractor
	specs     services.SpecificationService
	sites     services.SiteService
	packager  services.Packager
}

func New(
	extractor services.TextExtractor,
	specs services.SpecificationService,
	sites services.SiteService,
	packager services.Packager,
) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		specs:     specs,
		sites:     sites,
		packager:  packager,
	}
}

// GenerateSpecification extracts the resume text and runs the first model
// exchange. Extraction is settled before anything is sent to the provider:
// an unusable upload costs zero model calls.
func (p *Pipeline) GenerateSpecification(ctx context.Context, st State, doc models.UploadedDocument) (State, error) {
	if doc.IsZero() {
		return st, ErrNoFile
	}

	text, err := p.extractor.Extract(doc)
	if err != nil {
		return st, fmt.Errorf("%w: %v", ErrEmptyExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		return st, ErrEmptyExtraction
	}

	spec, err := p.specs.Generate(ctx, text)
	if err != nil {
		return st, fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	return st.WithResume(doc.Name, text).WithSpecification(spec), nil
}

// UpdateSpecification stores a user-edited specification without touching the
// model. The edited text is what the next synthesis run consumes.
func (p *Pipeline) UpdateSpecification(st State, text string) (State, error) {
	if strings.TrimSpace(text) == "" {
		return st, ErrEmptySpecification
	}
	return st.WithSpecification(text), nil
}

// SynthesizeSite runs the second model exchange against the current
// specification and packages the result when all three files came back
// nonempty. A partial parse is not an error: the report names the missing
// segments and a previously built archive stays in place until a complete
// bundle replaces it.
func (p *Pipeline) SynthesizeSite(ctx context.Context, st State) (State, error) {
	if !st.HasSpecification() {
		return st, ErrNoSpecification
	}

	bundle, report, err := p.sites.Synthesize(ctx, st.Specification)
	if err != nil {
		return st, fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	next := st.WithSite(bundle, report)

	if bundle.Complete() {
		archive, err := p.packager.Build(bundle)
		if err != nil {
			return st, fmt.Errorf("failed to package website: %w", err)
		}
		next = next.WithArchive(archive)
	}

	return next, nil
}
