// ABOUTME: SQLite-backed append-only journal of session commands and executor runs.
// ABOUTME: Provides append and per-session query operations; rows are never updated.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// CommandRow is one journaled command.
type CommandRow struct {
	EntryID   string
	SessionID string
	Kind      string
	Action    string
	Message   string
	At        string
}

// RunRow is one journaled executor run.
type RunRow struct {
	EntryID    string
	SessionID  string
	Generation uint64
	Algorithm  string
	Extra      string
	Outcome    string
	At         string
}

// Journal records every arbitrated command and executor run. It is a
// write-behind audit trail, never consulted to rebuild session state.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at the given path and runs
// migrations to ensure the schema is up to date.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS commands (
			entry_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			action TEXT NOT NULL,
			message TEXT NOT NULL,
			at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS commands_session ON commands(session_id);

		CREATE TABLE IF NOT EXISTS runs (
			entry_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			generation INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			extra TEXT NOT NULL,
			outcome TEXT NOT NULL,
			at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS runs_session ON runs(session_id);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordCommand appends one command entry. The message is whatever the
// command boundary reported to the user, empty on silent success.
func (j *Journal) RecordCommand(sessionID, kind, action, message string) error {
	_, err := j.db.Exec(
		`INSERT INTO commands (entry_id, session_id, kind, action, message, at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ulid.Make().String(), sessionID, kind, action, message, timestamp())
	if err != nil {
		return fmt.Errorf("record command: %w", err)
	}
	return nil
}

// RecordRun appends one run entry. Generation is the generation the document
// was submitted under.
func (j *Journal) RecordRun(sessionID string, generation uint64, algorithm, extra, outcome string) error {
	_, err := j.db.Exec(
		`INSERT INTO runs (entry_id, session_id, generation, algorithm, extra, outcome, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ulid.Make().String(), sessionID, generation, algorithm, extra, outcome, timestamp())
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// CommandsFor returns a session's command entries, oldest first. Entry IDs
// are ULIDs, so lexicographic order is insertion order.
func (j *Journal) CommandsFor(sessionID string) ([]CommandRow, error) {
	rows, err := j.db.Query(
		`SELECT entry_id, session_id, kind, action, message, at
		 FROM commands WHERE session_id = ? ORDER BY entry_id ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query commands: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []CommandRow
	for rows.Next() {
		var c CommandRow
		if err := rows.Scan(&c.EntryID, &c.SessionID, &c.Kind, &c.Action, &c.Message, &c.At); err != nil {
			return nil, fmt.Errorf("scan command row: %w", err)
		}
		entries = append(entries, c)
	}
	return entries, rows.Err()
}

// RunsFor returns a session's run entries, oldest first.
func (j *Journal) RunsFor(sessionID string) ([]RunRow, error) {
	rows, err := j.db.Query(
		`SELECT entry_id, session_id, generation, algorithm, extra, outcome, at
		 FROM runs WHERE session_id = ? ORDER BY entry_id ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []RunRow
	for rows.Next() {
		var r RunRow
		if err := rows.Scan(&r.EntryID, &r.SessionID, &r.Generation, &r.Algorithm, &r.Extra, &r.Outcome, &r.At); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		entries = append(entries, r)
	}
	return entries, rows.Err()
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z07:00")
}
