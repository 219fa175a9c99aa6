// Package storage provides SQLite-based persistence for daily puzzle
// progress, completions and move logs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dayfill/internal/config"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// LocalPlayer is the player name used by Open.
const LocalPlayer = "local"

// Store manages the SQLite database connection. All reads and writes are
// scoped to one player; As returns a view for another player.
type Store struct {
	db     *sql.DB
	player string
}

// Progress is the saved board for one calendar date.
type Progress struct {
	Date      string
	Catalog   string
	Snapshot  core.Snapshot
	Moves     int
	Hints     int
	Elapsed   time.Duration
	Completed bool
	UpdatedAt time.Time
}

// Completion records a solved day.
type Completion struct {
	ID        int64
	Date      string
	Catalog   string
	Moves     int
	Hints     int
	Elapsed   time.Duration
	CreatedAt time.Time
}

// MoveRecord is one logged move for a date.
type MoveRecord struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	PieceID string    `json:"pieceId"`
	FromRow int       `json:"fromRow"`
	FromCol int       `json:"fromCol"`
	ToRow   int       `json:"toRow"`
	ToCol   int       `json:"toCol"`
	At      time.Time `json:"at"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, player: LocalPlayer}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			player TEXT NOT NULL,
			date TEXT NOT NULL,
			catalog TEXT NOT NULL,
			snapshot TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			hints INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player, date)
		);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			date TEXT NOT NULL,
			catalog TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			hints INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_player_date ON completions(player, date);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			date TEXT NOT NULL,
			move_id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			piece_id TEXT NOT NULL,
			from_row INTEGER NOT NULL,
			from_col INTEGER NOT NULL,
			to_row INTEGER NOT NULL,
			to_col INTEGER NOT NULL,
			at_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_moves_player_date ON moves(player, date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// As returns a view of the store scoped to player. The view shares the
// connection; close only the original.
func (s *Store) As(player string) *Store {
	if player == "" {
		player = LocalPlayer
	}
	return &Store{db: s.db, player: player}
}

// Player returns the player this store is scoped to.
func (s *Store) Player() string {
	return s.player
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProgress upserts the progress row for p.Date.
func (s *Store) SaveProgress(p Progress) error {
	if p.Date == "" {
		return errors.New("storage: progress has no date")
	}
	return saveProgress(s.db, s.player, p)
}

// execer is the part of *sql.DB and *sql.Tx the write helpers need.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func saveProgress(ex execer, player string, p Progress) error {
	snap, err := sonic.MarshalString(p.Snapshot)
	if err != nil {
		return fmt.Errorf("storage: cannot encode snapshot: %w", err)
	}

	_, err = ex.Exec(
		`INSERT INTO progress (player, date, catalog, snapshot, moves, hints, elapsed_ms, completed, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player, date) DO UPDATE SET
		   catalog = excluded.catalog,
		   snapshot = excluded.snapshot,
		   moves = excluded.moves,
		   hints = excluded.hints,
		   elapsed_ms = excluded.elapsed_ms,
		   completed = excluded.completed,
		   updated_at = CURRENT_TIMESTAMP`,
		player, p.Date, p.Catalog, snap, p.Moves, p.Hints, p.Elapsed.Milliseconds(), boolInt(p.Completed),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// LoadProgress returns the saved progress for date, or nil if none exists.
func (s *Store) LoadProgress(date string) (*Progress, error) {
	row := s.db.QueryRow(
		`SELECT date, catalog, snapshot, moves, hints, elapsed_ms, completed, updated_at
		 FROM progress WHERE player = ? AND date = ?`,
		s.player, date,
	)
	p, err := scanProgress(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AllProgress returns every saved progress row, newest date first.
func (s *Store) AllProgress() ([]Progress, error) {
	rows, err := s.db.Query(
		`SELECT date, catalog, snapshot, moves, hints, elapsed_ms, completed, updated_at
		 FROM progress WHERE player = ? ORDER BY date DESC`,
		s.player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var out []Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(row scanner) (*Progress, error) {
	var p Progress
	var snap string
	var elapsedMS int64
	var completed int
	var updatedAt any

	if err := row.Scan(&p.Date, &p.Catalog, &snap, &p.Moves, &p.Hints, &elapsedMS, &completed, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("storage: cannot scan progress: %w", err)
	}
	if err := sonic.UnmarshalString(snap, &p.Snapshot); err != nil {
		return nil, fmt.Errorf("storage: corrupt snapshot for %s: %w", p.Date, err)
	}
	p.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	p.Completed = completed != 0
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// DeleteProgress removes the saved progress for date.
func (s *Store) DeleteProgress(date string) error {
	if _, err := s.db.Exec("DELETE FROM progress WHERE player = ? AND date = ?", s.player, date); err != nil {
		return fmt.Errorf("storage: cannot delete progress: %w", err)
	}
	return nil
}

// RecordCompletion stores a solved day.
// Returns the ID of the inserted record.
func (s *Store) RecordCompletion(c Completion) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO completions (player, date, catalog, moves, hints, elapsed_ms) VALUES (?, ?, ?, ?, ?, ?)`,
		s.player, c.Date, c.Catalog, c.Moves, c.Hints, c.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Completions returns the most recent completions, newest first.
// A non-positive limit returns all of them.
func (s *Store) Completions(limit int) ([]Completion, error) {
	query := `SELECT id, date, catalog, moves, hints, elapsed_ms, created_at
		 FROM completions
		 WHERE player = ?
		 ORDER BY date DESC, id DESC`
	args := []any{s.player}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var elapsedMS int64
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Date, &c.Catalog, &c.Moves, &c.Hints, &elapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		c.CreatedAt = parseTime(createdAt)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// CompletedDays returns the distinct solved dates in ascending order.
func (s *Store) CompletedDays() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT date FROM completions WHERE player = ? ORDER BY date`, s.player)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completed days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return days, nil
}

// SaveMoves appends move records for date. Records whose ID is already
// stored are ignored.
func (s *Store) SaveMoves(date string, moves []MoveRecord) error {
	if len(moves) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertMoves(tx, s.player, date, moves); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit moves: %w", err)
	}
	return nil
}

func insertMoves(tx *sql.Tx, player, date string, moves []MoveRecord) error {
	stmt, err := tx.Prepare(
		`INSERT OR IGNORE INTO moves (player, date, move_id, kind, piece_id, from_row, from_col, to_row, to_col, at_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare move insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range moves {
		if _, err := stmt.Exec(player, date, m.ID, m.Kind, m.PieceID, m.FromRow, m.FromCol, m.ToRow, m.ToCol, m.At.UnixMilli()); err != nil {
			return fmt.Errorf("storage: cannot save move %s: %w", m.ID, err)
		}
	}
	return nil
}

// Moves returns the logged moves for date in the order they were made.
func (s *Store) Moves(date string) ([]MoveRecord, error) {
	rows, err := s.db.Query(
		`SELECT move_id, kind, piece_id, from_row, from_col, to_row, to_col, at_ms
		 FROM moves WHERE player = ? AND date = ? ORDER BY at_ms, id`,
		s.player, date,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var out []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var atMS int64
		if err := rows.Scan(&m.ID, &m.Kind, &m.PieceID, &m.FromRow, &m.FromCol, &m.ToRow, &m.ToCol, &atMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.At = time.UnixMilli(atMS).UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearData deletes everything stored for the player.
func (s *Store) ClearData() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"progress", "completions", "moves"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE player = ?", s.player); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and string datetime columns.
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
