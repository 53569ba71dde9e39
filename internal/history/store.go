// apps/solver/internal/history/store.go
//
// Outcome log for finished solver rounds.
// Only the result of a round is kept (owner, outcome, guess count); the
// candidate set itself is never persisted.
//
// Owners are either user IDs or anonymous cookie IDs.

package history

import (
	"context"
	"database/sql"
	"time"
)

// Outcome values mirror the finished round states.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeExhausted = "exhausted"
)

// timeLayout is fixed-width so finished_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type Result struct {
	RoundID    string    `json:"roundId"`
	OwnerID    string    `json:"-"`
	Outcome    string    `json:"outcome"`
	Guesses    int       `json:"guesses"`
	FinishedAt time.Time `json:"finishedAt"`
}

type Stats struct {
	Played     int     `json:"played"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Exhausted  int     `json:"exhausted"`
	Streak     int     `json:"streak"`
	AvgGuesses float64 `json:"avgGuesses"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts a finished round. Recording the same round twice is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO rounds(id, owner_id, outcome, guesses, finished_at)
		 VALUES(?,?,?,?,?)`,
		r.RoundID, r.OwnerID, r.Outcome, r.Guesses, r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Claim moves every result of fromOwner to toOwner, e.g. when a guest signs
// in. It returns the number of moved rounds.
func (s *Store) Claim(ctx context.Context, fromOwner, toOwner string) (int64, error) {
	if fromOwner == "" || toOwner == "" || fromOwner == toOwner {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `UPDATE rounds SET owner_id=? WHERE owner_id=?`, toOwner, fromOwner)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Recent returns the owner's latest results, newest first.
func (s *Store) Recent(ctx context.Context, ownerID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, outcome, guesses, finished_at
		 FROM rounds
		 WHERE owner_id=?
		 ORDER BY finished_at DESC, rowid DESC
		 LIMIT ?`, ownerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var finished string
		if err := rows.Scan(&r.RoundID, &r.OwnerID, &r.Outcome, &r.Guesses, &finished); err != nil {
			return nil, err
		}
		r.FinishedAt, _ = time.Parse(timeLayout, finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats aggregates every recorded round of an owner.
// Streak counts consecutive wins ending at the most recent round.
func (s *Store) Stats(ctx context.Context, ownerID string) (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1),
		        COALESCE(SUM(outcome='won'), 0),
		        COALESCE(SUM(outcome='lost'), 0),
		        COALESCE(SUM(outcome='exhausted'), 0),
		        AVG(CASE WHEN outcome='won' THEN guesses END)
		 FROM rounds WHERE owner_id=?`, ownerID,
	).Scan(&st.Played, &st.Won, &st.Lost, &st.Exhausted, &avg)
	if err != nil {
		return st, err
	}
	st.AvgGuesses = avg.Float64

	rows, err := s.db.QueryContext(ctx,
		`SELECT outcome FROM rounds WHERE owner_id=? ORDER BY finished_at DESC, rowid DESC`, ownerID)
	if err != nil {
		return st, err
	}
	defer rows.Close()
	for rows.Next() {
		var outcome string
		if err := rows.Scan(&outcome); err != nil {
			return st, err
		}
		if outcome != OutcomeWon {
			break
		}
		st.Streak++
	}
	return st, rows.Err()
}
