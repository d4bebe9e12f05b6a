package main

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	units "github.com/docker/go-units"
	"github.com/spf13/cobra"

	"farhan/portfolio-generator/internal/config"
	"farhan/portfolio-generator/internal/models"
	"farhan/portfolio-generator/internal/pipeline"
	"farhan/portfolio-generator/internal/services"
)

var (
	generateResume   string
	generateOutput   string
	generateSpecFile string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a portfolio website archive from a resume file in one shot",
	Long: `generate runs the full pipeline non-interactively: extract the resume
text, build the website specification, synthesize the site and write the
archive to disk. The interactive review step is skipped; use --save-spec to
keep the intermediate specification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateResume, "resume", "", "path to the resume file (PDF or DOCX)")
	generateCmd.Flags().StringVar(&generateOutput, "output", services.ArchiveFilename, "path for the generated archive")
	generateCmd.Flags().StringVar(&generateSpecFile, "save-spec", "", "optional path to save the intermediate website specification")
	generateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(ctx context.Context) error {
	cfg := config.Load()

	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	data, err := os.ReadFile(generateResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	model, err := services.NewGeminiChat(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Temperature,
		cfg.Gemini.MaxOutputTokens,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}

	prompts := services.NewPromptBuilder()
	pipe := pipeline.New(
		services.NewTextExtractor(),
		services.NewSpecificationService(model, prompts),
		services.NewSiteService(model, prompts),
		services.NewZipPackager(),
	)

	doc := models.UploadedDocument{
		Name:      filepath.Base(generateResume),
		MediaType: mime.TypeByExtension(filepath.Ext(generateResume)),
		Data:      data,
	}

	log.Printf("📄 Extracting text from %s (%s)", doc.Name, units.HumanSize(float64(len(data))))

	state, err := pipe.GenerateSpecification(ctx, pipeline.NewState(), doc)
	if err != nil {
		return err
	}

	if generateSpecFile != "" {
		if err := os.WriteFile(generateSpecFile, []byte(state.Specification), 0o644); err != nil {
			return fmt.Errorf("failed to save specification: %w", err)
		}
		log.Printf("📝 Specification saved to %s", generateSpecFile)
	}

	log.Println("🤖 Generating portfolio website (HTML, CSS, JS)...")

	state, err = pipe.SynthesizeSite(ctx, state)
	if err != nil {
		return err
	}

	if !state.HasArchive() {
		return fmt.Errorf("website incomplete, missing segments: %s", strings.Join(state.Report.Missing(), ", "))
	}

	if err := os.WriteFile(generateOutput, state.Archive, 0o644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	log.Printf("✅ Website archive written to %s (%s)", generateOutput, units.HumanSize(float64(len(state.Archive))))
	return nil
}
