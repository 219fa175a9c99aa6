package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/registry"
	"github.com/vovakirdan/dayfill/internal/storage"
)

// menuRow is one line of the start menu.
type menuRow int

const (
	rowPlay menuRow = iota
	rowDate
	rowCatalog
	rowHistory
	rowQuit
	menuRows
)

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceHistory
	MenuChoiceQuit
)

// dayState is what the store knows about a date.
type dayState int

const (
	dayUntouched dayState = iota
	dayInProgress
	daySolved
)

// MenuModel is the start screen: pick a date and a catalog, then play.
type MenuModel struct {
	date       time.Time
	today      time.Time
	catalogs   []registry.CatalogInfo
	catalogIdx int
	cursor     menuRow
	width      int
	height     int
	store      *storage.Store
	logger     *log.Logger
	theme      Theme
	days       map[string]dayState
	choice     MenuChoice
}

// NewMenuModel creates the menu with today's date and the given catalog
// preselected.
func NewMenuModel(store *storage.Store, catalogID string, today time.Time, theme Theme, logger *log.Logger, width, height int) MenuModel {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	m := MenuModel{
		date:     today,
		today:    today,
		catalogs: registry.List(),
		width:    width,
		height:   height,
		store:    store,
		logger:   logger,
		theme:    theme,
	}
	for i, c := range m.catalogs {
		if c.ID == catalogID {
			m.catalogIdx = i
		}
	}
	m.Refresh()
	return m
}

// Refresh reloads per-day progress from the store.
func (m *MenuModel) Refresh() {
	m.days = make(map[string]dayState)
	m.choice = MenuChoiceNone
	if m.store == nil {
		return
	}
	all, err := m.store.AllProgress()
	if err != nil {
		m.logger.Warn("cannot load progress list", "error", err)
		return
	}
	for _, p := range all {
		if p.Completed {
			m.days[p.Date] = daySolved
		} else {
			m.days[p.Date] = dayInProgress
		}
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m *MenuModel) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "t":
		m.date = m.today
		return
	case "tab":
		m.choice = MenuChoiceHistory
		return
	}

	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuRows-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.shift(-1)

	case MenuActionRight:
		m.shift(1)

	case MenuActionSelect:
		switch m.cursor {
		case rowPlay, rowDate, rowCatalog:
			m.choice = MenuChoicePlay
		case rowHistory:
			m.choice = MenuChoiceHistory
		case rowQuit:
			m.choice = MenuChoiceQuit
		}
	}
}

// shift changes the value on the date or catalog row.
func (m *MenuModel) shift(dir int) {
	switch m.cursor {
	case rowPlay, rowDate:
		m.date = m.date.AddDate(0, 0, dir)
	case rowCatalog:
		if n := len(m.catalogs); n > 0 {
			m.catalogIdx = ((m.catalogIdx+dir)%n + n) % n
		}
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("  D A Y F I L L  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Cover every cell except today's month, day and weekday"), m.width))
	b.WriteString("\n\n")

	for row := rowPlay; row < menuRows; row++ {
		b.WriteString(centerText(m.rowText(row), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  T: Today  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuDescription.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) rowText(row menuRow) string {
	var text string
	switch row {
	case rowPlay:
		text = "Play " + m.dateName()
	case rowDate:
		text = fmt.Sprintf("Date:    < %s >  %s", m.date.Format("Mon 2 Jan 2006"), m.dayMark())
	case rowCatalog:
		title := "none"
		if len(m.catalogs) > 0 {
			c := m.catalogs[m.catalogIdx]
			title = fmt.Sprintf("%s (%d cells)", c.Title, c.Cells)
		}
		text = fmt.Sprintf("Pieces:  < %s >", title)
	case rowHistory:
		text = "History"
	case rowQuit:
		text = "Quit"
	}

	if row == m.cursor {
		return m.theme.MenuItemActive.Render("> " + text)
	}
	return m.theme.MenuItemNormal.Render("  " + text)
}

func (m MenuModel) dateName() string {
	switch m.date.Sub(m.today) {
	case 0:
		return "today's puzzle"
	case -24 * time.Hour:
		return "yesterday's puzzle"
	default:
		return "puzzle for " + m.date.Format(core.DateLayout)
	}
}

func (m MenuModel) dayMark() string {
	switch m.days[m.date.Format(core.DateLayout)] {
	case daySolved:
		return "solved"
	case dayInProgress:
		return "in progress"
	default:
		return ""
	}
}

// Choice returns the pending selection.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Date returns the selected puzzle date.
func (m MenuModel) Date() time.Time {
	return m.date
}

// SetDate selects a puzzle date.
func (m *MenuModel) SetDate(date time.Time) {
	m.date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// CatalogID returns the selected catalog.
func (m MenuModel) CatalogID() string {
	if len(m.catalogs) == 0 {
		return ""
	}
	return m.catalogs[m.catalogIdx].ID
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
