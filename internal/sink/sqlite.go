package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/hyperifyio/tripexport/internal/extract"
)

// SQLite writes every table into one database file, one SQL table per
// extract with TEXT columns. All writes of a run share one transaction that
// Close commits; a failed Write rolls everything back, so the previous run's
// tables stay intact.
type SQLite struct {
	db   *sql.DB
	path string
	tx   *sql.Tx
	err  error
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps the pragmas below in effect for every statement.
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Write(ctx context.Context, t extract.Table) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.tx == nil {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return "", fmt.Errorf("begin: %w", err)
		}
		s.tx = tx
	}
	if err := replaceTable(ctx, s.tx, t); err != nil {
		_ = s.tx.Rollback()
		s.tx = nil
		s.err = fmt.Errorf("table %s: %w", t.Name, err)
		return "", s.err
	}
	return s.path + "#" + t.Name, nil
}

// Close commits the pending transaction, unless a Write failed, and closes
// the database.
func (s *SQLite) Close() error {
	var err error
	if s.tx != nil {
		if cerr := s.tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit: %w", cerr)
		}
		s.tx = nil
	}
	if cerr := s.db.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func replaceTable(ctx context.Context, tx *sql.Tx, t extract.Table) error {
	name := quoteIdent(t.Name)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
		return err
	}
	cols := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c) + " TEXT"
		marks[i] = "?"
	}
	if _, err := tx.ExecContext(ctx, "CREATE TABLE "+name+" ("+strings.Join(cols, ", ")+")"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+name+" VALUES ("+strings.Join(marks, ", ")+")")
	if err != nil {
		return err
	}
	defer stmt.Close()
	args := make([]any, len(t.Columns))
	for _, row := range t.Rows {
		for i := range args {
			args[i] = ""
			if i < len(row) {
				args[i] = row[i]
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
