// Package dayfill provides the game session for the daily calendar puzzle:
// status, move history, hints, notices and drag handling on top of the
// engine in the core subpackage.
//
// A Session is single-writer. The platform layer owns it and calls its
// methods from one goroutine.
package dayfill

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusReady     Status = "ready"
	StatusPlaying   Status = "playing"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithHintLimit caps hints per game. 0 means unlimited, negative disables.
func WithHintLimit(n int) Option {
	return func(s *Session) {
		s.hintLimit = n
	}
}

// WithLayout replaces the board tables.
func WithLayout(layout core.Layout) Option {
	return func(s *Session) {
		s.layout = layout
	}
}

// Session is one player's game.
type Session struct {
	catalog *core.Catalog
	layout  core.Layout

	date   time.Time
	grid   *core.Grid
	ledger *core.Ledger
	status Status

	selected core.ShapeID
	drag     *DragSession
	history  []Move
	notices  []Notice
	stats    Stats

	hintLimit int
	clock     func() time.Time
	logger    *log.Logger
}

// NewSession creates a session for the catalog. Call InitializeGame or
// StartNewGame before use.
func NewSession(catalog *core.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog: catalog,
		layout:  core.DefaultLayout(),
		clock:   time.Now,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitializeGame sets up a fresh board for date in the Ready state.
// Invalid date components fail with core.ErrInvalidDateTarget.
func (s *Session) InitializeGame(date time.Time) error {
	target, err := core.TargetForDate(s.layout, date)
	if err != nil {
		return err
	}
	grid, err := core.NewGrid(s.layout, target)
	if err != nil {
		return fmt.Errorf("dayfill: %w", err)
	}

	s.date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s.grid = grid
	s.ledger = core.NewLedger(s.catalog, grid)
	s.status = StatusReady
	s.selected = ""
	s.drag = nil
	s.history = nil
	s.notices = nil
	s.stats = Stats{}

	s.logger.Info("game initialized", "date", s.DateKey(), "target", target.String())
	return nil
}

// StartNewGame initializes the board for date and starts the clock.
func (s *Session) StartNewGame(date time.Time) error {
	if err := s.InitializeGame(date); err != nil {
		return err
	}
	s.start()
	return nil
}

// ResetGame clears the board for the current date and starts over.
func (s *Session) ResetGame() error {
	if s.grid == nil {
		return fmt.Errorf("dayfill: reset before initialize")
	}
	return s.StartNewGame(s.date)
}

func (s *Session) start() {
	s.status = StatusPlaying
	s.stats.StartedAt = s.clock()
}

// Pause stops the clock. Mutations are rejected until Resume.
func (s *Session) Pause() {
	if s.status != StatusPlaying {
		return
	}
	s.CancelDrag()
	s.status = StatusPaused
	s.stats.pausedAt = s.clock()
}

// Resume restarts the clock after Pause.
func (s *Session) Resume() {
	if s.status != StatusPaused {
		return
	}
	s.stats.pausedFor += s.clock().Sub(s.stats.pausedAt)
	s.stats.pausedAt = time.Time{}
	s.status = StatusPlaying
}

// TogglePause switches between Playing and Paused.
func (s *Session) TogglePause() {
	if s.status == StatusPaused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// ensurePlaying gates mutations. A Ready session starts on first use.
func (s *Session) ensurePlaying() error {
	switch s.status {
	case StatusPlaying:
		return nil
	case StatusReady:
		s.start()
		return nil
	case StatusPaused:
		return &core.PlacementError{Code: core.CodeNotPlaying, Message: "game is paused"}
	case StatusCompleted:
		return &core.PlacementError{Code: core.CodeNotPlaying, Message: "puzzle already solved"}
	default:
		return &core.PlacementError{Code: core.CodeNotPlaying, Message: "no game in progress"}
	}
}

// checkWin moves the session to Completed when the board is solved.
func (s *Session) checkWin() {
	if s.status == StatusCompleted || !core.IsSolved(s.ledger.Board(), s.grid) {
		return
	}
	s.status = StatusCompleted
	s.stats.CompletedAt = s.clock()
	s.selected = ""
	s.ledger.SetSelected("")
	elapsed := s.stats.Elapsed(s.clock())
	s.logger.Info("puzzle solved", "date", s.DateKey(), "moves", s.stats.Moves, "hints", s.stats.HintsUsed, "elapsed", elapsed)
	s.notify(NoticeSuccess, fmt.Sprintf("Solved %s in %d moves", s.grid.Target(), s.stats.Moves))
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Date returns the puzzle date.
func (s *Session) Date() time.Time { return s.date }

// DateKey returns the date in storage key form.
func (s *Session) DateKey() string { return s.date.Format(core.DateLayout) }

// Grid returns the static board.
func (s *Session) Grid() *core.Grid { return s.grid }

// Target returns the active date target.
func (s *Session) Target() core.DateTarget { return s.grid.Target() }

// Catalog returns the shape catalog.
func (s *Session) Catalog() *core.Catalog { return s.catalog }

// Board returns the current occupancy view.
func (s *Session) Board() *core.Board { return s.ledger.Board() }

// Pieces returns the piece instances in catalog order.
func (s *Session) Pieces() []core.PieceInstance { return s.ledger.Pieces() }

// Unplaced returns ids of pieces in storage.
func (s *Session) Unplaced() []core.ShapeID { return s.ledger.Unplaced() }

// Placed returns placements in stack order.
func (s *Session) Placed() []core.PlacedPiece { return s.ledger.Placed() }

// Placement returns one piece's placement.
func (s *Session) Placement(id core.ShapeID) (core.PlacedPiece, bool) {
	return s.ledger.Placement(id)
}

// Matrix returns a piece's shape in its current orientation.
func (s *Session) Matrix(id core.ShapeID) (core.Matrix, error) { return s.ledger.Matrix(id) }

// Piece returns one piece instance.
func (s *Session) Piece(id core.ShapeID) (core.PieceInstance, error) { return s.ledger.Piece(id) }

// ContendedCells returns cells covered by more than one piece.
func (s *Session) ContendedCells() []core.Position { return s.ledger.ContendedCells() }

// ConflictingPieces returns placed pieces sharing a cell with another.
func (s *Session) ConflictingPieces() []core.ShapeID { return s.ledger.ConflictingPieces() }

// Progress returns covered and total playable cells.
func (s *Session) Progress() (covered, total int) {
	return core.Progress(s.ledger.Board(), s.grid)
}

// IsSolved reports whether the board is currently solved.
func (s *Session) IsSolved() bool {
	return core.IsSolved(s.ledger.Board(), s.grid)
}

// Stats returns a copy of the game stats.
func (s *Session) Stats() Stats { return s.stats }

// Elapsed returns active play time.
func (s *Session) Elapsed() time.Duration { return s.stats.Elapsed(s.clock()) }

// RestoreStats seeds stats for a game resumed from storage.
func (s *Session) RestoreStats(moves, hints int, elapsed time.Duration) {
	now := s.clock()
	s.stats.Moves = moves
	s.stats.HintsUsed = hints
	s.stats.StartedAt = now.Add(-elapsed)
	s.stats.pausedFor = 0
	if s.status == StatusCompleted {
		s.stats.CompletedAt = now
	}
}

// HintLimit returns the configured hint cap.
func (s *Session) HintLimit() int { return s.hintLimit }

// Snapshot captures the board for persistence.
func (s *Session) Snapshot() core.Snapshot {
	return core.TakeSnapshot(s.ledger, s.date)
}

// Restore replaces the game with the snapshot's date and placements.
// On error the session is left as it was.
func (s *Session) Restore(snap core.Snapshot) error {
	date, err := snap.ParseDate()
	if err != nil {
		return err
	}
	target, err := core.TargetForDate(s.layout, date)
	if err != nil {
		return err
	}
	grid, err := core.NewGrid(s.layout, target)
	if err != nil {
		return fmt.Errorf("dayfill: %w", err)
	}
	ledger := core.NewLedger(s.catalog, grid)
	if err := core.Replay(ledger, snap); err != nil {
		return err
	}

	s.date = date
	s.grid = grid
	s.ledger = ledger
	s.selected = ""
	s.drag = nil
	s.history = nil
	s.notices = nil
	s.stats = Stats{}
	s.start()
	if core.IsSolved(ledger.Board(), grid) {
		s.status = StatusCompleted
		s.stats.CompletedAt = s.stats.StartedAt
	}

	s.logger.Info("game restored", "date", s.DateKey(), "pieces", len(snap.Pieces), "status", s.status)
	return nil
}
