// Package storage keeps the results of the games finished during one run
// of the arcade. It uses an in-memory SQLite database through the pure-Go
// modernc.org/sqlite driver, so nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN is a private in-memory database. Every connection to it sees a
// different database, so the pool is pinned to one connection.
const memoryDSN = ":memory:"

// Store records finished games for the current session.
type Store struct {
	db      *sql.DB
	session string
}

// Result is one finished game.
type Result struct {
	ID        int64
	Session   string
	GameID    string
	Score     int
	Moves     int
	Seconds   int
	Won       bool
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	BestMoves  int // Fewest moves among won games, 0 if none
	LastPlayed time.Time
}

// Open creates an empty in-memory results log tagged with a new session id.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, session: uuid.NewString()}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			seconds INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_rank ON results(game_id, score DESC, moves, seconds);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Session returns the id that tags every result of this run.
func (s *Store) Session() string {
	return s.session
}

// Close closes the database connection. The results are gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (session, game_id, score, moves, seconds, won)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.session, r.GameID, r.Score, r.Moves, r.Seconds, r.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults returns the best results for a game: highest score first,
// then fewest moves, then fastest.
func (s *Store) TopResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session, game_id, score, moves, seconds, won, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY score DESC, moves ASC, seconds ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Best returns the top-ranked result for a game, or nil if it has none.
func (s *Store) Best(gameID string) (*Result, error) {
	results, err := s.TopResults(gameID, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// Stats retrieves aggregated statistics for a game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var bestMoves sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        MIN(CASE WHEN won = 1 THEN moves END), MAX(created_at)
		 FROM results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &bestMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	if bestMoves.Valid {
		stats.BestMoves = int(bestMoves.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearResults deletes all results of a game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResult(rows *sql.Rows) (Result, error) {
	var r Result
	var createdAt any
	if err := rows.Scan(&r.ID, &r.Session, &r.GameID, &r.Score, &r.Moves, &r.Seconds, &r.Won, &createdAt); err != nil {
		return Result{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
