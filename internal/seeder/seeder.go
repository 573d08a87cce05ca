// Package seeder loads a generated record set into a live database through
// a provider adapter, in batches and inside a transaction when possible.
package seeder

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fatih/color"

	"github.com/dummyforge/dummyforge/internal/database"
	"github.com/dummyforge/dummyforge/internal/schema"
)

// validIdentifier validates SQL identifiers (table/column names) to prevent
// SQL injection through the generation config.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

const defaultBatchSize = 500

type Options struct {
	Table         string
	Batch         int  // Rows per INSERT statement
	Truncate      bool // Clear the table before seeding
	NoTransaction bool // Disable transaction wrapping
}

type Seeder struct {
	provider string
	adapter  database.Adapter
}

func New(provider string, adapter database.Adapter) *Seeder {
	return &Seeder{provider: provider, adapter: adapter}
}

// Seed creates the target table from the field list and inserts all records.
func (s *Seeder) Seed(ctx context.Context, cfg *schema.GenerationConfig, records []*schema.Record, opts Options) error {
	if len(records) == 0 {
		color.Yellow("⚠️  No records to seed")
		return nil
	}

	if !validIdentifier.MatchString(opts.Table) {
		return fmt.Errorf("invalid table name: %s", opts.Table)
	}
	for _, f := range cfg.Fields {
		if !validIdentifier.MatchString(f.Name) {
			return fmt.Errorf("invalid column name: %s", f.Name)
		}
	}

	batch := opts.Batch
	if batch <= 0 {
		batch = defaultBatchSize
	}

	color.Cyan("🌱 Seeding %d records into %s...", len(records), opts.Table)

	columns := s.tableColumns(cfg, records[0])
	if err := s.adapter.CreateTable(ctx, opts.Table, columns); err != nil {
		return fmt.Errorf("failed to create table %s: %w", opts.Table, err)
	}

	if opts.Truncate {
		if err := s.adapter.Truncate(ctx, opts.Table); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", opts.Table, err)
		}
		color.Yellow("🧹 Table %s truncated", opts.Table)
	}

	inTransaction := false
	if !opts.NoTransaction {
		if err := s.begin(ctx); err != nil {
			color.Yellow("⚠️  Could not start transaction: %v (continuing without transaction)", err)
		} else {
			inTransaction = true
			color.Cyan("🔒 Transaction started")
		}
	}

	seedErr := s.insertAll(ctx, cfg, records, opts.Table, batch)

	if inTransaction {
		if seedErr != nil {
			color.Yellow("🔄 Rolling back transaction due to error...")
			if rbErr := s.rollback(ctx); rbErr != nil {
				return fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, seedErr)
			}
			return seedErr
		}
		if err := s.commit(ctx); err != nil {
			s.rollback(ctx)
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		color.Cyan("🔓 Transaction committed")
	} else if seedErr != nil {
		return seedErr
	}

	color.Green("✅ Seeded %d records into %s", len(records), opts.Table)
	return nil
}

func (s *Seeder) insertAll(ctx context.Context, cfg *schema.GenerationConfig, records []*schema.Record, table string, batch int) error {
	names := cfg.FieldNames()

	for start := 0; start < len(records); start += batch {
		end := start + batch
		if end > len(records) {
			end = len(records)
		}

		rows := make([][]any, 0, end-start)
		for _, record := range records[start:end] {
			row := make([]any, len(names))
			for i, name := range names {
				row[i] = record.Value(name)
			}
			rows = append(rows, row)
		}

		if err := s.adapter.InsertBatch(ctx, table, names, rows); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d: %w", start, end-1, err)
		}
	}
	return nil
}

// tableColumns derives the CREATE TABLE column list from the configured
// field order, with types inferred from the first record's values.
func (s *Seeder) tableColumns(cfg *schema.GenerationConfig, sample *schema.Record) []database.Column {
	columns := make([]database.Column, len(cfg.Fields))
	for i, f := range cfg.Fields {
		columns[i] = database.Column{
			Name: f.Name,
			Type: s.adapter.ColumnType(sample.Value(f.Name)),
		}
	}
	return columns
}

func (s *Seeder) begin(ctx context.Context) error {
	query := "BEGIN"
	if s.provider == "mysql" {
		query = "START TRANSACTION"
	}
	return s.adapter.Exec(ctx, query)
}

func (s *Seeder) commit(ctx context.Context) error {
	return s.adapter.Exec(ctx, "COMMIT")
}

func (s *Seeder) rollback(ctx context.Context) error {
	return s.adapter.Exec(ctx, "ROLLBACK")
}
