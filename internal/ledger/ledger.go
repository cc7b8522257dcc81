// Package ledger keeps an in-memory DuckDB table of batch step outcomes
// and answers summary queries over it.
package ledger

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-seq/internal/batch"
)

// Ledger manages an in-memory DuckDB connection. Nothing is written to disk.
type Ledger struct {
	db *sql.DB
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return l, nil
}

// Close closes the database connection and discards the ledger.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) ensureSchema() error {
	_, err := l.db.Exec(`CREATE TABLE IF NOT EXISTS step_results (
		step_index BIGINT,
		op VARCHAR,
		target VARCHAR,
		value VARCHAR,
		outcome VARCHAR,
		error_message VARCHAR
	)`)
	return err
}

// RecordResults batch-inserts step results using the Appender API.
func (l *Ledger) RecordResults(results []batch.Result) error {
	if len(results) == 0 {
		return nil
	}

	conn, err := l.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "step_results")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range results {
		var msg string
		if r.Err != nil {
			msg = r.Err.Error()
		}
		if err := appender.AppendRow(
			int64(r.Index), r.Op, r.Target, r.Value, r.Outcome(), msg,
		); err != nil {
			return fmt.Errorf("append step result: %w", err)
		}
	}

	return appender.Flush()
}

// SummaryRow counts steps sharing an operation and outcome.
type SummaryRow struct {
	Op      string
	Outcome string
	Count   int64
}

// Summary groups recorded steps by operation and outcome.
func (l *Ledger) Summary() ([]SummaryRow, error) {
	rows, err := l.db.Query(`SELECT op, outcome, COUNT(*)
		FROM step_results
		GROUP BY op, outcome
		ORDER BY op, outcome`)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []SummaryRow
	for rows.Next() {
		var r SummaryRow
		if err := rows.Scan(&r.Op, &r.Outcome, &r.Count); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary: %w", err)
	}
	return out, nil
}

// Failure is a recorded step that did not succeed.
type Failure struct {
	Index   int64
	Op      string
	Target  string
	Outcome string
	Message string
}

// Failures returns failed steps in execution order.
func (l *Ledger) Failures() ([]Failure, error) {
	rows, err := l.db.Query(`SELECT step_index, op, target, outcome, error_message
		FROM step_results
		WHERE outcome <> 'ok'
		ORDER BY step_index`)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	var out []Failure
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.Index, &f.Op, &f.Target, &f.Outcome, &f.Message); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failures: %w", err)
	}
	return out, nil
}

// Count returns the number of recorded steps.
func (l *Ledger) Count() (int64, error) {
	var n int64
	if err := l.db.QueryRow("SELECT COUNT(*) FROM step_results").Scan(&n); err != nil {
		return 0, fmt.Errorf("count steps: %w", err)
	}
	return n, nil
}

// Clear removes all recorded steps.
func (l *Ledger) Clear() error {
	_, err := l.db.Exec("DELETE FROM step_results")
	return err
}
