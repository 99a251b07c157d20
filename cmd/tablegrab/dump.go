package main

import (
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Extract tables from a PDF into CSV with no header handling",
	Long: `Dump is the minimal extraction entry point: it downloads a PDF, recovers
tables from the requested pages, and writes every row to the CSV as data.
Use extract when the tables carry multi-row headers.`,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().String("pdf-url", "", "URL of the PDF to process")
	dumpCmd.Flags().String("pages", "", "pages to extract (e.g. 'all', '1', '1-3', '1,3,5')")
	dumpCmd.Flags().String("output-csv", "", "output CSV filename")
	dumpCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	dumpCmd.Flags().Bool("manifest", true, "write a YAML manifest sidecar next to the CSV")

	dumpCmd.MarkFlagRequired("pdf-url")
	dumpCmd.MarkFlagRequired("pages")
	dumpCmd.MarkFlagRequired("output-csv")

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	pdfURL, _ := cmd.Flags().GetString("pdf-url")
	pages, _ := cmd.Flags().GetString("pages")
	outputCSV, _ := cmd.Flags().GetString("output-csv")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	manifest, _ := cmd.Flags().GetBool("manifest")

	opts := pipelineOptions{
		pdfURL:    pdfURL,
		pages:     pages,
		outputCSV: outputCSV,
		timeout:   timeout,
		manifest:  manifest,
	}
	return runPipeline(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
