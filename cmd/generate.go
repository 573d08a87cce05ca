package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dummyforge/dummyforge/internal/config"
	"github.com/dummyforge/dummyforge/internal/countries"
	"github.com/dummyforge/dummyforge/internal/dferr"
	"github.com/dummyforge/dummyforge/internal/export"
	"github.com/dummyforge/dummyforge/internal/generator"
	"github.com/dummyforge/dummyforge/internal/schema"
)

var (
	genFile   string
	genFormat string
	genOut    string
	genTable  string
	genCount  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic dataset and export it to a file",
	Long: `
Generate records from a YAML or JSON generation config and write them to the
export path in the chosen format.

Examples:
  dummyforge generate --file people.yaml
  dummyforge generate --file people.yaml --format sql --table users
  dummyforge generate --file people.json --format xlsx --count 500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		genCfg, err := schema.LoadFile(genFile)
		if err != nil {
			return err
		}
		if genCount > 0 {
			genCfg.Count = genCount
		}
		warnUnknownCountries(genCfg)

		format, err := export.ParseFormat(genFormat)
		if err != nil {
			return err
		}

		table := genTable
		if table == "" {
			table = cfg.TableName
		}
		outDir := genOut
		if outDir == "" {
			outDir = cfg.ExportPath
		}

		color.Cyan("⚙️  Generating %d records (%d fields)...", genCfg.Count, len(genCfg.Fields))

		engine := generator.NewDefault()
		records, err := engine.Generate(genCfg)
		if err != nil {
			printEngineError(err)
			return err
		}

		path, err := export.WriteFile(outDir, format, records, table)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		color.Green("✅ Wrote %d records to %s", len(records), path)
		return nil
	},
}

// warnUnknownCountries flags configured location codes outside the country
// table. They still generate: the raw code stands in for the country name
// and phone numbers fall back to a generic format.
func warnUnknownCountries(cfg *schema.GenerationConfig) {
	check := func(code string) {
		if code != "" && !countries.Known(code) {
			color.Yellow("⚠️  Unrecognized country code %q: the raw code is used as the country name and phone numbers use a generic format", code)
		}
	}
	check(cfg.Location.SingleCountry)
	for _, c := range cfg.Location.Countries {
		check(c)
	}
}

// printEngineError surfaces the catalog's user message and resolution hint
// alongside the diagnostic code.
func printEngineError(err error) {
	var de *dferr.Error
	if !errors.As(err, &de) {
		return
	}
	color.Red("❌ %s", de.UserMessage())
	color.Yellow("💡 %s", de.Resolution())
	color.White("   Code: %s", de.Code())
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genFile, "file", "", "Generation config file (.yaml, .yml or .json)")
	generateCmd.Flags().StringVar(&genFormat, "format", "csv", "Export format: csv, sql, txt, json, xlsx, pdf")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Export directory (default from app config)")
	generateCmd.Flags().StringVar(&genTable, "table", "", "Table name for SQL export")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "Override the record count from the config file")
	generateCmd.MarkFlagRequired("file")
}
