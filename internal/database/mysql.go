package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
)

type MySQLAdapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func NewMySQLAdapter() *MySQLAdapter {
	return &MySQLAdapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (m *MySQLAdapter) Connect(ctx context.Context, url string) error {
	// go-sql-driver expects a DSN without the scheme prefix.
	dsn := strings.TrimPrefix(url, "mysql://")
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open mysql connection: %w", err)
	}
	m.db = db
	return nil
}

func (m *MySQLAdapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *MySQLAdapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *MySQLAdapter) Exec(ctx context.Context, query string, args ...any) error {
	_, err := m.db.ExecContext(ctx, query, args...)
	return err
}

func (m *MySQLAdapter) CreateTable(ctx context.Context, table string, columns []Column) error {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = fmt.Sprintf("%s %s", col.Name, col.Type)
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
	return m.Exec(ctx, query)
}

func (m *MySQLAdapter) InsertBatch(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	insert := m.qb.Insert(table).Columns(columns...)
	for _, row := range rows {
		insert = insert.Values(row...)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}
	return m.Exec(ctx, query, args...)
}

func (m *MySQLAdapter) Truncate(ctx context.Context, table string) error {
	return m.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table))
}

func (m *MySQLAdapter) ColumnType(sample any) string {
	switch sample.(type) {
	case int, int32:
		return "INT"
	case int64:
		return "BIGINT"
	case float32, float64:
		return "DOUBLE"
	case bool:
		return "TINYINT(1)"
	default:
		return "VARCHAR(255)"
	}
}
