package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/config"
	platformcore "github.com/vovakirdan/dayfill/internal/core"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/storage"
)

// AppOptions configures the full menu, game and history flow.
type AppOptions struct {
	Config config.Config
	Store  *storage.Store // nil disables persistence and history
	Logger *log.Logger
	Clock  func() time.Time
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenHistory
)

// AppModel manages the session flow: menu -> game or history -> menu.
// It is the top-level model for the menu command and for SSH sessions.
type AppModel struct {
	opts     AppOptions
	runtime  platformcore.RuntimeConfig
	theme    Theme
	screen   appScreen
	menu     MenuModel
	game     GameModel
	history  HistoryModel
	status   string // last error shown under the menu
	quitting bool
}

// NewAppModel creates the app on the menu screen.
func NewAppModel(opts AppOptions, rt platformcore.RuntimeConfig) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	theme := ThemeByName(opts.Config.Board.Theme)
	return AppModel{
		opts:    opts,
		runtime: rt,
		theme:   theme,
		screen:  screenMenu,
		menu:    NewMenuModel(opts.Store, opts.Config.Game.Catalog, opts.Clock(), theme, opts.Logger, rt.ScreenW, rt.ScreenH),
	}
}

// Init initializes the app model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime = m.runtime.WithSize(size.Width, size.Height)
		newMenu, _ := m.menu.Update(msg)
		m.menu = newMenu.(MenuModel)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
	}
	newMenu, cmd := m.menu.Update(msg)
	m.menu = newMenu.(MenuModel)

	switch m.menu.Choice() {
	case MenuChoicePlay:
		return m.startGame(m.menu.Date(), m.menu.CatalogID())
	case MenuChoiceHistory:
		m.history = NewHistoryModel(m.opts.Store, m.opts.Clock(), m.theme, m.opts.Logger, m.runtime.ScreenW, m.runtime.ScreenH)
		m.screen = screenHistory
		return m, nil
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	m.game = newGame.(GameModel)

	if m.game.quitting {
		m.quitting = true
		return m, cmd
	}
	if m.game.BackToMenu() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHistory, cmd := m.history.Update(msg)
	m.history = newHistory.(HistoryModel)

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		m.backToMenu()
		return m, nil
	}
	if date, catalogID := m.history.OpenDay(); date != "" {
		day, err := time.Parse(core.DateLayout, date)
		if err != nil {
			m.opts.Logger.Warn("bad date in history", "date", date, "error", err)
			m.backToMenu()
			return m, nil
		}
		m.menu.SetDate(day)
		return m.startGame(day, catalogID)
	}
	return m, cmd
}

// startGame switches to the board for date. Failures return to the menu
// with a status line.
func (m AppModel) startGame(date time.Time, catalogID string) (tea.Model, tea.Cmd) {
	game, err := NewGameModel(GameOptions{
		Date:      date,
		CatalogID: catalogID,
		Config:    m.opts.Config,
		Store:     m.opts.Store,
		Logger:    m.opts.Logger,
		Clock:     m.opts.Clock,
	}, m.runtime)
	if err != nil {
		m.opts.Logger.Error("cannot start game", "date", date.Format(core.DateLayout), "catalog", catalogID, "error", err)
		m.backToMenu()
		m.status = err.Error()
		return m, nil
	}
	m.game = game
	m.screen = screenGame
	return m, m.game.Init()
}

func (m *AppModel) backToMenu() {
	m.screen = screenMenu
	m.menu.Refresh()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenHistory:
		return m.history.View()
	default:
		view := m.menu.View()
		if m.status != "" {
			view += "\n" + centerText(m.theme.NoticeError.Render(m.status), m.runtime.ScreenW) + "\n"
		}
		return view
	}
}

// RunApp starts the menu-driven Bubble Tea program.
func RunApp(opts AppOptions, rt platformcore.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(opts, rt),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
