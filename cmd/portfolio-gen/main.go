package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-gen",
	Short: "Generate a static portfolio website from a resume",
	Long: `portfolio-gen turns a resume (PDF or DOCX) into a downloadable static
portfolio website through a two-stage pipeline: the resume is first distilled
into an editable website specification, then the specification is turned into
HTML, CSS and JS packaged as a zip archive.

Run 'serve' for the interactive HTTP API or 'generate' for a one-shot build.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
