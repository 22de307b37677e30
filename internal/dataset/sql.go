package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"

	_ "modernc.org/sqlite" // SQLite driver.
)

const defaultTable = "trips"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// isSQLiteFile reports whether path names a SQLite database by extension.
func isSQLiteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// isMySQLLocator reports whether locator is a mysql:// or mariadb:// URL.
func isMySQLLocator(locator string) bool {
	return strings.HasPrefix(locator, "mysql://") || strings.HasPrefix(locator, "mariadb://")
}

// mysqlLocator converts a mysql:// or mariadb:// URL into a driver DSN and the
// table to read. The table comes from the "table" query parameter.
func mysqlLocator(locator string) (dsn, table, label string, err error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", "", "", fmt.Errorf("parse dsn: %w", err)
	}
	cfg := mysql.NewConfig()
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	if cfg.User == "" || cfg.Addr == "" || cfg.DBName == "" {
		return "", "", "", fmt.Errorf("incomplete dsn (need user, host and database)")
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", "", "", fmt.Errorf("parse dsn query: %w", err)
	}
	table = q.Get("table")
	if table == "" {
		table = defaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return "", "", "", fmt.Errorf("invalid table name %q", table)
	}
	return cfg.FormatDSN(), table, u.Redacted(), nil
}

func readSQLite(ctx context.Context, path string) (*frame, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return readSQL(ctx, "sqlite", path, defaultTable, filepath.Base(path))
}

func readMySQL(ctx context.Context, locator string) (*frame, error) {
	dsn, table, label, err := mysqlLocator(locator)
	if err != nil {
		return nil, err
	}
	return readSQL(ctx, "mysql", dsn, table, label)
}

// readSQL reads every column of table as text.
func readSQL(ctx context.Context, driver, dsn, table, label string) (*frame, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", label, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close after a read-only pass.
			_ = cerr
		}
	}()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", label, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", label, err)
	}
	f := &frame{
		source: label,
		names:  names,
		cols:   make(map[string][]string, len(names)),
	}
	values := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, &DataFormatError{Source: label, Row: f.rows + 1, Err: err}
		}
		for i, name := range names {
			f.cols[name] = append(f.cols[name], values[i].String)
		}
		f.rows++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", label, err)
	}
	return f, nil
}
