package diagnostics

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/typelattice/typelattice/internal/types"
)

// Store persists diagnostics to a sqlite database so a caller can query the
// history of ill-formed terms across runs, instead of only scrolling a log
// stream. It uses the pure-Go modernc.org/sqlite driver.
type Store struct {
	db        *sql.DB
	SessionID uuid.UUID
}

// OpenStore opens (creating if necessary) a sqlite database at path and
// ensures its schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: opening store: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS diagnostics (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	procedure  TEXT NOT NULL,
	reason     TEXT NOT NULL,
	message    TEXT NOT NULL,
	expected   TEXT,
	observed   TEXT,
	node_index INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("diagnostics: creating schema: %w", err)
	}
	return &Store{db: db, SessionID: uuid.New()}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts one diagnostic row under s.SessionID.
func (s *Store) Record(d types.Diagnostic) error {
	_, err := s.db.Exec(
		`INSERT INTO diagnostics (session_id, procedure, reason, message, expected, observed, node_index)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.SessionID.String(), d.Procedure, d.Reason.String(), d.Message,
		printOrNil(d.Expected), printOrNil(d.Observed), d.NodeIndex,
	)
	return err
}

// Count returns how many diagnostics have been recorded in this session.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM diagnostics WHERE session_id = ?`, s.SessionID.String()).Scan(&n)
	return n, err
}

// Sink adapts Store to types.Sink. Per the fire-and-forget sink contract, a
// failed insert is dropped rather than propagated, so a persistence failure
// never stops the reducer. The insert itself runs synchronously inside Emit.
type Sink struct {
	Store *Store
}

func (s Sink) Emit(d types.Diagnostic) {
	_ = s.Store.Record(d)
}

var _ types.Sink = Sink{}
