package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dummyforge/dummyforge/internal/config"
	"github.com/dummyforge/dummyforge/internal/database"
	"github.com/dummyforge/dummyforge/internal/generator"
	"github.com/dummyforge/dummyforge/internal/schema"
	"github.com/dummyforge/dummyforge/internal/seeder"
)

var (
	seedFile     string
	seedTable    string
	seedBatch    int
	seedTruncate bool
	seedNoTx     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate records and insert them into a database",
	Long: `
Generate records from a generation config and seed them into the configured
database (PostgreSQL, MySQL or SQLite). The target table is created from the
field list when it does not exist.

Examples:
  dummyforge seed --file people.yaml --table users
  dummyforge seed --file people.yaml --table users --truncate --batch 1000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		genCfg, err := schema.LoadFile(seedFile)
		if err != nil {
			return err
		}
		warnUnknownCountries(genCfg)

		engine := generator.NewDefault()
		records, err := engine.Generate(genCfg)
		if err != nil {
			printEngineError(err)
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter := database.NewAdapter(cfg.Database.Provider)
		if err := adapter.Connect(ctx, dbURL); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		if err := adapter.Ping(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		table := seedTable
		if table == "" {
			table = cfg.TableName
		}

		s := seeder.New(cfg.Database.Provider, adapter)
		if err := s.Seed(ctx, genCfg, records, seeder.Options{
			Table:         table,
			Batch:         seedBatch,
			Truncate:      seedTruncate,
			NoTransaction: seedNoTx,
		}); err != nil {
			color.Red("❌ Seeding failed: %v", err)
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Generation config file (.yaml, .yml or .json)")
	seedCmd.Flags().StringVar(&seedTable, "table", "", "Target table name (default from app config)")
	seedCmd.Flags().IntVar(&seedBatch, "batch", 500, "Rows per INSERT statement")
	seedCmd.Flags().BoolVar(&seedTruncate, "truncate", false, "Clear the table before seeding")
	seedCmd.Flags().BoolVar(&seedNoTx, "no-transaction", false, "Disable transaction wrapping")
	seedCmd.MarkFlagRequired("file")
}
