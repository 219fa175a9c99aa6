package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the stats sidebar
	sidebarWidth       = 24 // Width of stats sidebar
	maxCompletions     = 200
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open day"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists solved days with a stats summary.
type HistoryModel struct {
	store       *storage.Store
	logger      *log.Logger
	theme       Theme
	today       time.Time
	completions []storage.Completion
	summary     *storage.Summary
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	openDate    string // day picked with Open
	openCatalog string
	showSidebar bool
}

// NewHistoryModel creates the history screen and loads its data.
func NewHistoryModel(store *storage.Store, today time.Time, theme Theme, logger *log.Logger, width, height int) HistoryModel {
	m := HistoryModel{
		store:       store,
		logger:      logger,
		theme:       theme,
		today:       today,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Day", Width: 4},
		{Title: "Pieces", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Hints", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func tableHeight(h int) int {
	if h < 3 {
		return 3
	}
	return h
}

// load reads completions and the summary from the store.
func (m *HistoryModel) load() {
	m.completions = nil
	m.summary = nil
	if m.store != nil {
		completions, err := m.store.Completions(maxCompletions)
		if err != nil {
			m.logger.Warn("cannot load completions", "error", err)
		} else {
			m.completions = completions
		}
		summary, err := m.store.Summary(m.today)
		if err != nil {
			m.logger.Warn("cannot load summary", "error", err)
		} else {
			m.summary = summary
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded completions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.completions))
	for i, c := range m.completions {
		day := ""
		if t, err := time.Parse(core.DateLayout, c.Date); err == nil {
			day = t.Format("Mon")
		}
		rows[i] = table.Row{
			c.Date,
			day,
			c.Catalog,
			formatElapsed(c.Elapsed),
			fmt.Sprintf("%d", c.Moves),
			fmt.Sprintf("%d", c.Hints),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if row := m.table.SelectedRow(); row != nil {
				m.openDate, m.openCatalog = row[0], row[2]
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SOLVED DAYS", m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the stats sidebar next to the table.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString(m.theme.MenuTitle.Render("Stats"))
	sidebar.WriteString("\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for _, line := range m.summaryLines() {
		sidebar.WriteString(line)
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders a one-line summary above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	line := "no stats yet"
	if s := m.summary; s != nil {
		line = fmt.Sprintf("solved %d · streak %d · best %d", s.Solved, s.CurrentStreak, s.LongestStreak)
	}
	b.WriteString(centerText(m.theme.MenuDescription.Render(line), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

func (m HistoryModel) summaryLines() []string {
	s := m.summary
	if s == nil {
		return []string{"No stats yet"}
	}
	best := "-"
	if s.Solved > 0 {
		best = formatElapsed(s.BestElapsed)
	}
	last := s.LastSolved
	if last == "" {
		last = "-"
	}
	return []string{
		fmt.Sprintf("Started   %d", s.Started),
		fmt.Sprintf("Solved    %d", s.Solved),
		fmt.Sprintf("Streak    %d", s.CurrentStreak),
		fmt.Sprintf("Longest   %d", s.LongestStreak),
		fmt.Sprintf("Best time %s", best),
		fmt.Sprintf("Avg moves %.1f", s.AvgMoves),
		fmt.Sprintf("Hints     %d", s.HintsUsed),
		fmt.Sprintf("Last      %s", last),
	}
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.completions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No days solved yet.\nFill today's board to start a streak!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// OpenDay returns the date and catalog picked with Open, or empty
// strings.
func (m HistoryModel) OpenDay() (date, catalogID string) {
	return m.openDate, m.openCatalog
}
