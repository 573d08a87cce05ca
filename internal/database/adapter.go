// Package database provides per-provider adapters for seeding generated
// records into PostgreSQL, MySQL or SQLite.
package database

import "context"

// Column is one target-table column with its dialect-specific SQL type.
type Column struct {
	Name string
	Type string
}

type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	Exec(ctx context.Context, query string, args ...any) error

	CreateTable(ctx context.Context, table string, columns []Column) error
	InsertBatch(ctx context.Context, table string, columns []string, rows [][]any) error
	Truncate(ctx context.Context, table string) error

	// ColumnType maps a sample Go value to this dialect's column type.
	ColumnType(sample any) string
}

func NewAdapter(provider string) Adapter {
	switch provider {
	case "postgresql", "postgres":
		return NewPostgresAdapter()
	case "mysql":
		return NewMySQLAdapter()
	case "sqlite", "sqlite3":
		return NewSQLiteAdapter()
	default:
		return NewPostgresAdapter()
	}
}
