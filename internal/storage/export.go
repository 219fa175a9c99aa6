package storage

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// bundleVersion is bumped when the export layout changes.
const bundleVersion = 1

// Bundle is the JSON export of a whole store.
type Bundle struct {
	Version     int                     `json:"version"`
	ExportedAt  time.Time               `json:"exportedAt"`
	Progress    []BundleProgress        `json:"progress"`
	Completions []BundleCompletion      `json:"completions"`
	Moves       map[string][]MoveRecord `json:"moves,omitempty"`
}

// BundleProgress is a progress row in a Bundle.
type BundleProgress struct {
	Date      string        `json:"date"`
	Catalog   string        `json:"catalog"`
	Snapshot  core.Snapshot `json:"snapshot"`
	Moves     int           `json:"moves"`
	Hints     int           `json:"hints"`
	ElapsedMS int64         `json:"elapsedMs"`
	Completed bool          `json:"completed"`
}

// BundleCompletion is a completion row in a Bundle.
type BundleCompletion struct {
	Date      string `json:"date"`
	Catalog   string `json:"catalog"`
	Moves     int    `json:"moves"`
	Hints     int    `json:"hints"`
	ElapsedMS int64  `json:"elapsedMs"`
}

// ExportData serializes all progress, completions and moves as JSON.
func (s *Store) ExportData() ([]byte, error) {
	progress, err := s.AllProgress()
	if err != nil {
		return nil, err
	}
	completions, err := s.Completions(0)
	if err != nil {
		return nil, err
	}

	b := Bundle{
		Version:    bundleVersion,
		ExportedAt: time.Now().UTC(),
		Moves:      make(map[string][]MoveRecord),
	}
	for _, p := range progress {
		b.Progress = append(b.Progress, BundleProgress{
			Date:      p.Date,
			Catalog:   p.Catalog,
			Snapshot:  p.Snapshot,
			Moves:     p.Moves,
			Hints:     p.Hints,
			ElapsedMS: p.Elapsed.Milliseconds(),
			Completed: p.Completed,
		})
		moves, err := s.Moves(p.Date)
		if err != nil {
			return nil, err
		}
		if len(moves) > 0 {
			b.Moves[p.Date] = moves
		}
	}
	for _, c := range completions {
		b.Completions = append(b.Completions, BundleCompletion{
			Date:      c.Date,
			Catalog:   c.Catalog,
			Moves:     c.Moves,
			Hints:     c.Hints,
			ElapsedMS: c.Elapsed.Milliseconds(),
		})
	}

	data, err := sonic.ConfigStd.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode export: %w", err)
	}
	return data, nil
}

// ImportData merges an exported bundle into the store in one transaction:
// a bad row leaves the store untouched. Progress rows replace existing
// rows for the same date; completions already on record are skipped, so
// importing the same file twice changes nothing. Returns the number of
// progress rows imported.
func (s *Store) ImportData(data []byte) (int, error) {
	var b Bundle
	if err := sonic.Unmarshal(data, &b); err != nil {
		return 0, fmt.Errorf("storage: cannot decode import: %w", err)
	}
	if b.Version != bundleVersion {
		return 0, fmt.Errorf("storage: unsupported export version %d", b.Version)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range b.Progress {
		if err := checkImportDate(p.Date); err != nil {
			return 0, err
		}
		err := saveProgress(tx, s.player, Progress{
			Date:      p.Date,
			Catalog:   p.Catalog,
			Snapshot:  p.Snapshot,
			Moves:     p.Moves,
			Hints:     p.Hints,
			Elapsed:   time.Duration(p.ElapsedMS) * time.Millisecond,
			Completed: p.Completed,
		})
		if err != nil {
			return 0, err
		}
	}
	for _, c := range b.Completions {
		if err := checkImportDate(c.Date); err != nil {
			return 0, err
		}
		_, err := tx.Exec(
			`INSERT INTO completions (player, date, catalog, moves, hints, elapsed_ms)
			 SELECT ?, ?, ?, ?, ?, ?
			 WHERE NOT EXISTS (
			   SELECT 1 FROM completions
			   WHERE player = ? AND date = ? AND catalog = ? AND moves = ? AND hints = ? AND elapsed_ms = ?
			 )`,
			s.player, c.Date, c.Catalog, c.Moves, c.Hints, c.ElapsedMS,
			s.player, c.Date, c.Catalog, c.Moves, c.Hints, c.ElapsedMS,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot import completion for %s: %w", c.Date, err)
		}
	}
	for date, moves := range b.Moves {
		if err := checkImportDate(date); err != nil {
			return 0, err
		}
		if err := insertMoves(tx, s.player, date, moves); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return len(b.Progress), nil
}

func checkImportDate(date string) error {
	if _, err := time.Parse(core.DateLayout, date); err != nil {
		return fmt.Errorf("storage: bad date %q in import: %w", date, err)
	}
	return nil
}
