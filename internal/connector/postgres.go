package connector

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"autoviz/internal/dataset"
)

// LoadPostgres runs a query against PostgreSQL and materializes the result.
// The source is either a full SELECT statement or a bare table name; the DSN
// comes from Options.PostgresDSN.
func LoadPostgres(source string, opt Options) (*dataset.Table, error) {
	dsn := opt.PostgresDSN
	query := strings.TrimSpace(source)
	lower := strings.ToLower(query)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return nil, fmt.Errorf("connector: postgres source must be a query or table name; set the DSN separately")
	}
	if dsn == "" {
		return nil, fmt.Errorf("connector: postgres DSN required for SQL sources")
	}
	if !strings.HasPrefix(lower, "select") {
		if !validIdentifier(query) {
			return nil, fmt.Errorf("connector: invalid table name %q", query)
		}
		query = fmt.Sprintf("SELECT * FROM %s", query)
		if opt.MaxRows > 0 {
			query = fmt.Sprintf("%s LIMIT %d", query, opt.MaxRows)
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query postgres: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var records [][]string
	values := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec := make([]string, len(header))
		for i, v := range values {
			rec[i] = renderSQLValue(v)
		}
		records = append(records, rec)
		if opt.MaxRows > 0 && len(records) >= opt.MaxRows {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return dataset.FromRecords(header, records)
}

func renderSQLValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// validIdentifier accepts schema-qualified table names only, a whitelist
// against injection through the table-name form.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for i, r := range part {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			case r >= '0' && r <= '9':
				if i == 0 {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}
