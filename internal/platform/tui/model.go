package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/config"
	platformcore "github.com/vovakirdan/dayfill/internal/core"
	"github.com/vovakirdan/dayfill/internal/games/dayfill"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/codec"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/registry"
	"github.com/vovakirdan/dayfill/internal/storage"
)

// GameOptions configures a game screen.
type GameOptions struct {
	Date      time.Time
	CatalogID string
	Config    config.Config
	Store     *storage.Store // nil disables persistence
	Logger    *log.Logger
	Clock     func() time.Time
}

// GameModel is the Bubble Tea model for one day's puzzle.
type GameModel struct {
	session   *dayfill.Session
	catalogID string
	cfg       config.Config
	store     *storage.Store
	logger    *log.Logger
	clock     func() time.Time
	runtime   platformcore.RuntimeConfig
	screen    *platformcore.Screen
	theme     Theme
	keys      GameKeyMap
	help      help.Model
	cursor    core.Position
	shareCode string

	persisted int  // moves already written to the move log
	recorded  bool // completion stored for this game

	standalone bool // back quits the program
	goBack     bool
	quitting   bool
}

// NewGameModel creates the session for opts.Date and resumes saved
// progress for that date when the catalog matches.
func NewGameModel(opts GameOptions, rt platformcore.RuntimeConfig) (GameModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.CatalogID == "" {
		opts.CatalogID = opts.Config.Game.Catalog
	}
	catalog, err := registry.Get(opts.CatalogID)
	if err != nil {
		return GameModel{}, err
	}

	session := dayfill.NewSession(catalog,
		dayfill.WithLogger(opts.Logger),
		dayfill.WithClock(opts.Clock),
		dayfill.WithHintLimit(opts.Config.Game.HintLimit),
	)
	if err := session.InitializeGame(opts.Date); err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		session:   session,
		catalogID: opts.CatalogID,
		cfg:       opts.Config,
		store:     opts.Store,
		logger:    opts.Logger,
		clock:     opts.Clock,
		runtime:   rt,
		screen:    platformcore.NewScreen(rt.ScreenW, rt.ScreenH),
		theme:     ThemeByName(opts.Config.Board.Theme),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		cursor:    core.P(2, 0),
	}
	m.help.Width = rt.ScreenW
	m.resume()
	return m, nil
}

// Session exposes the underlying game session.
func (m GameModel) Session() *dayfill.Session {
	return m.session
}

// BackToMenu reports whether the player asked to leave the board.
func (m GameModel) BackToMenu() bool {
	return m.goBack
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime = m.runtime.WithSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.session.ExpireNotices(m.cfg.Game.NoticeTTL)
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	cmd := m.apply(m.keys.MapKey(msg))
	return m, cmd
}

// apply runs one board action against the session.
func (m *GameModel) apply(action platformcore.Action) tea.Cmd {
	s := m.session
	if action.Mutates() {
		m.shareCode = ""
	}

	var err error
	switch action {
	case platformcore.ActionNone:
		return nil

	case platformcore.ActionQuit:
		m.persist()
		m.quitting = true
		return tea.Quit

	case platformcore.ActionBack:
		if s.Dragging() {
			s.CancelDrag()
			return nil
		}
		m.persist()
		m.goBack = true
		if m.standalone {
			m.quitting = true
			return tea.Quit
		}
		return nil

	case platformcore.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return nil

	case platformcore.ActionPause:
		s.TogglePause()
		m.persist()
		return nil

	case platformcore.ActionUp, platformcore.ActionDown, platformcore.ActionLeft, platformcore.ActionRight:
		dr, dc, _ := action.Direction()
		next := m.cursor.Add(dr, dc)
		m.cursor = core.P(
			platformcore.Clamp(next.Row, 0, core.Rows-1),
			platformcore.Clamp(next.Col, 0, core.Cols-1),
		)
		return nil

	case platformcore.ActionNextPiece:
		s.SelectNext(1)
		return nil

	case platformcore.ActionPrevPiece:
		s.SelectNext(-1)
		return nil

	case platformcore.ActionPlace:
		err = m.placeAtCursor()

	case platformcore.ActionRemove:
		if id := m.targetPiece(); id != "" {
			err = s.Remove(id)
		}

	case platformcore.ActionRotate:
		if id := m.targetPiece(); id != "" {
			err = s.Rotate(id)
		}

	case platformcore.ActionFlipH:
		if id := m.targetPiece(); id != "" {
			err = s.FlipH(id)
		}

	case platformcore.ActionFlipV:
		if id := m.targetPiece(); id != "" {
			err = s.FlipV(id)
		}

	case platformcore.ActionUndo:
		err = s.Undo()
		if errors.Is(err, core.ErrNothingToUndo) {
			s.Post(dayfill.NoticeInfo, "Nothing to undo")
		}

	case platformcore.ActionHint:
		var h dayfill.Hint
		if h, err = s.Hint(); err == nil {
			_ = s.Select(h.PieceID)
			m.cursor = h.Anchor
		}

	case platformcore.ActionReset:
		if err = s.ResetGame(); err == nil {
			m.persisted = 0
			m.recorded = false
			s.Post(dayfill.NoticeInfo, "Board cleared")
		}

	case platformcore.ActionShare:
		m.share()
		return nil
	}

	if err != nil {
		m.logger.Debug("action rejected", "action", action, "error", err)
	}
	m.persist()
	return nil
}

// placeAtCursor places or moves the selected piece to the cursor. With
// nothing selected it picks up the piece under the cursor.
func (m *GameModel) placeAtCursor() error {
	s := m.session
	id := s.Selected()
	if id == "" {
		if occ := s.Board().Get(m.cursor); occ.Count > 0 {
			return s.Select(occ.PieceID)
		}
		s.SelectNext(1)
		return nil
	}
	return s.PlaceOrMove(id, m.cursor)
}

// targetPiece is the piece keyboard transforms act on: the selection, or
// the top piece under the cursor.
func (m *GameModel) targetPiece() core.ShapeID {
	if id := m.session.Selected(); id != "" {
		return id
	}
	return m.session.Board().Get(m.cursor).PieceID
}

// share encodes the board as a share code and shows it under the board.
func (m *GameModel) share() {
	code, err := codec.EncodeShareCode(m.session.Snapshot())
	if err != nil {
		m.logger.Error("share code failed", "error", err)
		m.session.Post(dayfill.NoticeError, "Could not build share code")
		return
	}
	m.shareCode = code
	m.logger.Info("share code", "date", m.session.DateKey(), "code", code)
}

// handleMouse implements drag and drop between the tray and the board.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	s := m.session
	layout := m.layout()
	x, y := msg.X, msg.Y-screenTop
	pointer := pointerAt(x, y)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.shareCode = ""
		if it, sub, ok := layout.TrayItemAt(x, y); ok {
			m.startDrag(dayfill.DragStart{
				PieceID: it.ID,
				Offset:  trayOffset(sub, layout.Metrics()),
				Origin:  dayfill.ZoneStorage,
				Metrics: layout.Metrics(),
			}, pointer)
			return
		}
		cell, ok := layout.CellAt(x, y)
		if !ok {
			return
		}
		m.cursor = cell
		occ := s.Board().Get(cell)
		if occ.Count == 0 {
			return
		}
		pp, placed := s.Placement(occ.PieceID)
		if !placed {
			return
		}
		metrics := layout.Metrics()
		m.startDrag(dayfill.DragStart{
			PieceID: occ.PieceID,
			Offset:  pointer.Sub(metrics.CellOrigin(pp.Anchor)),
			Origin:  dayfill.ZoneBoard,
			Metrics: metrics,
		}, pointer)

	case msg.Action == tea.MouseActionMotion && s.Dragging():
		s.UpdateDrag(pointer)

	case msg.Action == tea.MouseActionRelease && s.Dragging():
		var err error
		if layout.Tray.Contains(x, y) {
			_, err = s.DropToStorage()
		} else {
			_, err = s.EndDrag(&pointer)
		}
		if err != nil {
			m.logger.Debug("drop rejected", "error", err)
		}
		if d, ok := s.Placement(s.Selected()); ok {
			m.cursor = d.Anchor
		}
		m.persist()

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		id := core.ShapeID("")
		if it, _, ok := layout.TrayItemAt(x, y); ok {
			id = it.ID
		} else if cell, ok := layout.CellAt(x, y); ok {
			id = s.Board().Get(cell).PieceID
		}
		if id != "" {
			m.shareCode = ""
			_ = s.Select(id)
			if err := s.Rotate(id); err != nil {
				m.logger.Debug("rotate rejected", "piece", id, "error", err)
			}
			m.persist()
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		s.SelectNext(-1)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		s.SelectNext(1)
	}
}

func (m *GameModel) startDrag(start dayfill.DragStart, pointer core.Point) {
	if err := m.session.StartDrag(start); err != nil {
		m.logger.Debug("drag refused", "piece", start.PieceID, "error", err)
		return
	}
	m.session.UpdateDrag(pointer)
}

// layout computes positions for the current tray contents and width.
func (m GameModel) layout() boardLayout {
	var pieces []trayPiece
	for _, id := range m.session.Unplaced() {
		mat, err := m.session.Matrix(id)
		if err != nil {
			continue
		}
		pieces = append(pieces, trayPiece{ID: id, Matrix: mat})
	}
	return newBoardLayout(m.cfg.Board, m.runtime.ScreenW, pieces)
}

// saveScreenshot saves the current board to a text file.
func (m *GameModel) saveScreenshot() {
	layout := m.layout()
	boardView{session: m.session, layout: layout, theme: m.theme, game: m.cfg.Game, cursor: m.cursor}.draw(m.screen)

	dir := config.ExpandHome("~/.dayfill/screenshots")
	err := os.MkdirAll(dir, 0o755)
	if err == nil {
		name := fmt.Sprintf("%s_%s.txt", m.session.DateKey(), m.clock().Format("20060102_150405"))
		err = os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()+"\n"), 0o600)
	}
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.session.Post(dayfill.NoticeError, "Screenshot failed")
		return
	}
	m.session.Post(dayfill.NoticeInfo, "Screenshot saved")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	layout := m.layout()
	boardView{session: m.session, layout: layout, theme: m.theme, game: m.cfg.Game, cursor: m.cursor}.draw(m.screen)

	var b strings.Builder
	b.WriteString(m.hudView())
	b.WriteString("\n\n")
	if m.session.Status() == dayfill.StatusPaused {
		b.WriteString(m.pausedView(layout))
	} else {
		b.WriteString(RenderScreen(m.screen))
	}
	b.WriteString("\n\n")
	if line := m.statusView(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// hudView renders the title line with date, clock and progress.
func (m GameModel) hudView() string {
	s := m.session
	st := s.Stats()
	covered, total := s.Progress()
	placed := len(s.Placed())
	sep := m.theme.HUDDim.Render(" │ ")

	parts := []string{
		m.theme.HUDTitle.Render("DAYFILL") + " " + m.theme.HUDValue.Render(s.Date().Format("Mon 2 Jan 2006")),
		m.theme.HUDDim.Render(string(s.Status())),
		m.theme.HUDAccent.Render(formatElapsed(s.Elapsed())),
		m.theme.HUDValue.Render(fmt.Sprintf("moves %d", st.Moves)),
		m.theme.HUDValue.Render(fmt.Sprintf("cells %d/%d", covered, total)),
		m.theme.HUDValue.Render(fmt.Sprintf("pieces %d/%d", placed, s.Catalog().Len())),
		m.theme.HUDValue.Render(hintText(st.HintsUsed, s.HintLimit())),
	}
	if n := len(s.ConflictingPieces()); n > 0 && m.cfg.Game.HighlightConflicts {
		parts = append(parts, m.theme.NoticeWarning.Render(fmt.Sprintf("%d overlapping", n)))
	}
	return " " + strings.Join(parts, sep)
}

// pausedView hides the board behind a box of the same size.
func (m GameModel) pausedView(layout boardLayout) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.OverlayBorder.GetForeground()).
		Padding(1, 4).
		Render(m.theme.OverlayTitle.Render("PAUSED") + "\n\n" + m.theme.OverlayText.Render("press p to resume"))
	return lipgloss.Place(layout.Width, layout.Height, lipgloss.Center, lipgloss.Center, box)
}

// statusView renders the completion banner, notices and share code.
func (m GameModel) statusView() string {
	var lines []string
	s := m.session
	if s.Status() == dayfill.StatusCompleted {
		st := s.Stats()
		lines = append(lines, " "+m.theme.OverlayTitle.Render("Solved!")+" "+m.theme.OverlayText.Render(
			fmt.Sprintf("%s in %d moves, %s. c: share code · ctrl+r: play again · esc: menu",
				s.Target(), st.Moves, formatElapsed(s.Elapsed()))))
	}

	var notices []string
	for _, n := range s.Notices() {
		notices = append(notices, m.noticeStyle(n.Kind).Render(n.Text))
	}
	if len(notices) > 0 {
		lines = append(lines, " "+strings.Join(notices, m.theme.HUDDim.Render(" · ")))
	}
	if m.shareCode != "" {
		lines = append(lines, " "+m.theme.HUDDim.Render("share code: ")+m.theme.HUDAccent.Render(m.shareCode))
	}
	return strings.Join(lines, "\n")
}

func (m GameModel) noticeStyle(kind dayfill.NoticeKind) lipgloss.Style {
	switch kind {
	case dayfill.NoticeSuccess:
		return m.theme.NoticeSuccess
	case dayfill.NoticeWarning:
		return m.theme.NoticeWarning
	case dayfill.NoticeError:
		return m.theme.NoticeError
	default:
		return m.theme.NoticeInfo
	}
}

// formatElapsed renders a duration as mm:ss, or h:mm:ss past an hour.
func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	mm := int(d.Minutes()) % 60
	ss := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mm, ss)
	}
	return fmt.Sprintf("%02d:%02d", mm, ss)
}

func hintText(used, limit int) string {
	switch {
	case limit < 0:
		return "hints off"
	case limit == 0:
		return fmt.Sprintf("hints %d", used)
	default:
		return fmt.Sprintf("hints %d/%d", used, limit)
	}
}

// Run starts a standalone Bubble Tea program for one puzzle.
func Run(opts GameOptions, rt platformcore.RuntimeConfig) error {
	model, err := NewGameModel(opts, rt)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag and drop
	)

	_, err = p.Run()
	return err
}
