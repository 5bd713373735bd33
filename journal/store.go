package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ---------------------------------------------------------------------------
// SQLite-backed persistence
// ---------------------------------------------------------------------------

const storeSchema = `
CREATE TABLE IF NOT EXISTS invocations (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	seq      INTEGER NOT NULL,
	wrapper  TEXT    NOT NULL,
	binding  TEXT    NOT NULL,
	instance TEXT,
	args     TEXT,
	start_ns INTEGER NOT NULL,
	dur_ns   INTEGER NOT NULL,
	err      TEXT
);
CREATE INDEX IF NOT EXISTS idx_invocations_wrapper ON invocations(wrapper);
`

// Store persists invocation records in a SQLite database. It
// implements Sink, so it can back a Journal directly.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) a store at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open store %s: %w", path, err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts one invocation record.
func (s *Store) Record(inv *Invocation) error {
	_, err := s.db.Exec(
		`INSERT INTO invocations (seq, wrapper, binding, instance, args, start_ns, dur_ns, err)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.Seq, inv.Wrapper, inv.Binding, inv.Instance,
		joinArgs(inv.Args), inv.Start.UnixNano(), int64(inv.Duration), inv.Err,
	)
	if err != nil {
		return fmt.Errorf("journal: insert: %w", err)
	}
	return nil
}

// List returns up to limit records in insertion order. A non-positive
// limit returns everything.
func (s *Store) List(limit int) ([]*Invocation, error) {
	q := `SELECT seq, wrapper, binding, instance, args, start_ns, dur_ns, err
	      FROM invocations ORDER BY id`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(q+" LIMIT ?", limit)
	} else {
		rows, err = s.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("journal: list: %w", err)
	}
	defer rows.Close()

	var out []*Invocation
	for rows.Next() {
		var inv Invocation
		var instance, args, errText sql.NullString
		var startNS, durNS int64
		if err := rows.Scan(&inv.Seq, &inv.Wrapper, &inv.Binding, &instance, &args,
			&startNS, &durNS, &errText); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		inv.Instance = instance.String
		inv.Args = splitArgs(args.String)
		inv.Start = time.Unix(0, startNS).UTC()
		inv.Duration = time.Duration(durNS)
		inv.Err = errText.String
		out = append(out, &inv)
	}
	return out, rows.Err()
}

// CountByWrapper returns per-wrapper invocation totals.
func (s *Store) CountByWrapper() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT wrapper, COUNT(*) FROM invocations GROUP BY wrapper`)
	if err != nil {
		return nil, fmt.Errorf("journal: counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var wrapper string
		var n int
		if err := rows.Scan(&wrapper, &n); err != nil {
			return nil, fmt.Errorf("journal: scan: %w", err)
		}
		counts[wrapper] = n
	}
	return counts, rows.Err()
}

// Rendered argument lists are stored as a single text column. The unit
// separator keeps ordinary argument text intact.
const argSep = "\x1f"

func joinArgs(args []string) string {
	return strings.Join(args, argSep)
}

func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, argSep)
}
