package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// sequenceCounter hands out the global monotonic sequence number shared
// across all event tables, so events of different types can be ordered
// against each other. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on top of database/sql.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter

	// now is swapped in tests.
	now func() time.Time
}

func (r *eventRepo) timestamp() int64 {
	if r.now != nil {
		return r.now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

// insert stamps the row with the next sequence number and the current time.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, vals ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	cols = append([]string{"sequence", "timestamp"}, cols...)
	vals = append([]any{seqNum, r.timestamp()}, vals...)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), marks)
	if _, err := r.db.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// where builds the shared filter clause for QueryOpts.
func (o QueryOpts) where() (string, []any) {
	var conds []string
	var args []any

	if o.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, o.After)
	}
	if o.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, o.Before)
	}
	if !o.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, o.From.UnixMilli())
	}
	if !o.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, o.To.UnixMilli())
	}
	if o.Purpose != "" {
		conds = append(conds, "purpose = ?")
		args = append(args, o.Purpose)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
