package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plateaulabs/menuscan/internal/config"
	"github.com/plateaulabs/menuscan/internal/decode"
	"github.com/plateaulabs/menuscan/internal/ocr"
	"github.com/plateaulabs/menuscan/internal/pipeline"
	"github.com/plateaulabs/menuscan/internal/regions"
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract catalog items from menu documents",
	Long: `Extract structured catalog items from one or more documents.

Supported inputs: JPEG, PNG, BMP, TIFF, WebP, PDF, XLSX, CSV.
Images require an external OCR engine (tesseract by default), or a
pre-computed OCR result supplied via --ocr-json.

Examples:
  menuscan extract menu.jpg
  menuscan extract pricelist.pdf --format json --output items.json
  menuscan extract catalog.xlsx
  menuscan extract menu.png --ocr-json menu.ocr.json`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no input files provided")
		}

		cfg := GetConfig()

		format := cfg.Output.Format
		outputFile := cfg.Output.File
		kindFlag, _ := cmd.Flags().GetString("kind")
		ocrJSON, _ := cmd.Flags().GetString("ocr-json")

		if !formatValid(format) {
			return fmt.Errorf("invalid output format: %s (must be one of: %s)",
				format, strings.Join(config.ValidFormats, ", "))
		}

		pl, err := buildPipeline(cfg, ocrJSON)
		if err != nil {
			return fmt.Errorf("failed to initialize pipeline: %w", err)
		}

		var out strings.Builder
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			result, err := pl.Extract(cmd.Context(), pipeline.Input{
				Kind:     decode.Kind(kindFlag),
				Filename: path,
				Data:     data,
			})
			if err != nil {
				if errors.Is(err, pipeline.ErrNoItems) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: no items found\n", path)
					continue
				}
				return fmt.Errorf("extraction failed for %s: %w", path, err)
			}

			rendered, err := renderResult(result, format)
			if err != nil {
				return fmt.Errorf("failed to format result for %s: %w", path, err)
			}
			out.WriteString(rendered)
			if !strings.HasSuffix(rendered, "\n") {
				out.WriteString("\n")
			}
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(out.String()), 0o600); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			return nil
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out.String())
		return err
	},
}

func formatValid(format string) bool {
	for _, f := range config.ValidFormats {
		if format == f {
			return true
		}
	}
	return false
}

func renderResult(res *pipeline.Result, format string) (string, error) {
	switch format {
	case "json":
		return pipeline.ToJSON(res)
	case "csv":
		return pipeline.ToCSV(res)
	case "yaml":
		return pipeline.ToYAML(res)
	default:
		return pipeline.ToText(res)
	}
}

// buildPipeline assembles an extraction pipeline from application
// configuration. When ocrJSON is set a file-backed engine replaces
// the external tesseract binary.
func buildPipeline(cfg *config.Config, ocrJSON string) (*pipeline.Pipeline, error) {
	var engine ocr.Engine
	if ocrJSON != "" {
		engine = ocr.NewFileEngine(ocrJSON)
	} else {
		engine = ocr.NewTesseractEngine(cfg.OCR.Binary, cfg.OCR.Language)
	}

	rc := regions.DefaultConfig()
	rc.CellSize = cfg.Pipeline.Regions.CellSize
	rc.CellThreshold = cfg.Pipeline.Regions.CellThreshold
	rc.EdgeThreshold = cfg.Pipeline.Regions.EdgeThreshold
	rc.MergeFactor = cfg.Pipeline.Regions.MergeFactor
	rc.MinSide = cfg.Pipeline.Regions.MinSide

	return pipeline.NewBuilder().
		WithOCREngine(engine).
		WithRegionConfig(rc).
		WithMatchDistance(cfg.Pipeline.MatchDistancePx).
		WithDecodeTimeout(cfg.DecodeTimeout()).
		WithConfidenceFloor(cfg.Pipeline.ConfidenceFloor).
		Build()
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().String("kind", "", "input kind override (image, pdf, spreadsheet, csv); sniffed when empty")
	extractCmd.Flags().StringP("format", "f", "text", "output format (text, json, csv, yaml)")
	extractCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	extractCmd.Flags().String("ocr-json", "", "path to a pre-computed OCR result JSON instead of running tesseract")
	extractCmd.Flags().Int("confidence-floor", 0, "flag items below this confidence for review (0-100)")

	viper.BindPFlag("output.format", extractCmd.Flags().Lookup("format"))
	viper.BindPFlag("output.file", extractCmd.Flags().Lookup("output"))
	viper.BindPFlag("pipeline.confidence_floor", extractCmd.Flags().Lookup("confidence-floor"))
}
