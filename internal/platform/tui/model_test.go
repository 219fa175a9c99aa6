package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/config"
	platformcore "github.com/vovakirdan/dayfill/internal/core"
	"github.com/vovakirdan/dayfill/internal/games/dayfill"
	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
	"github.com/vovakirdan/dayfill/internal/storage"
)

var march15 = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return march15 }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestGame(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	m, err := NewGameModel(GameOptions{
		Date:   march15,
		Config: config.DefaultConfig(),
		Store:  store,
		Clock:  fixedClock,
	}, platformcore.DefaultConfig().WithSize(120, 40))
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GameModel)
	}
	return m
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestKeyboardPlacementIsSaved(t *testing.T) {
	store := openTestStore(t)
	m := newTestGame(t, store)

	// Tab selects L1; one step right puts it on days 2, 9, 16 and 17.
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	placed := m.Session().Placed()
	require.Len(t, placed, 1)
	assert.Equal(t, core.ShapeID("L1"), placed[0].PieceID)
	assert.Equal(t, core.P(2, 1), placed[0].Anchor)
	assert.Equal(t, dayfill.StatusPlaying, m.Session().Status())

	p, err := store.LoadProgress("2024-03-15")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "classic", p.Catalog)
	assert.Equal(t, 1, p.Moves)
	require.Len(t, p.Snapshot.Pieces, 1)

	moves, err := store.Moves("2024-03-15")
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "place", moves[0].Kind)
	assert.Equal(t, 2, moves[0].ToRow)
}

func TestResumeFromStore(t *testing.T) {
	store := openTestStore(t)
	m := newTestGame(t, store)
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.Len(t, m.Session().Placed(), 1)

	resumed := newTestGame(t, store)
	placed := resumed.Session().Placed()
	require.Len(t, placed, 1)
	assert.Equal(t, core.P(2, 1), placed[0].Anchor)
	assert.Equal(t, 1, resumed.Session().Stats().Moves)
}

func TestUndoThenMoveLogsBoth(t *testing.T) {
	store := openTestStore(t)
	m := newTestGame(t, store)
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
		runeKey('u'),
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	placed := m.Session().Placed()
	require.Len(t, placed, 1)
	assert.Equal(t, core.P(2, 2), placed[0].Anchor)

	moves, err := store.Moves("2024-03-15")
	require.NoError(t, err)
	assert.Len(t, moves, 2, "the undone place and the new place are both logged")
}

func TestMouseDragFromTrayAndBack(t *testing.T) {
	m := newTestGame(t, nil)
	layout := m.layout()
	first := layout.Items[0]
	require.Equal(t, core.ShapeID("L1"), first.ID)

	// Grab L1 by its top sub-cell and drop it over cell (2,1).
	target := layout.CellRect(core.P(2, 1))
	m = press(t, m,
		mouse(first.Rect.X, first.Rect.Y+screenTop, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(target.X+2, target.Y+screenTop, tea.MouseActionMotion, tea.MouseButtonLeft),
	)
	require.True(t, m.Session().Dragging())
	preview, ok := m.Session().Preview()
	require.True(t, ok)
	assert.True(t, preview.Snap.Valid)

	m = press(t, m, mouse(target.X+2, target.Y+screenTop, tea.MouseActionRelease, tea.MouseButtonLeft))
	require.False(t, m.Session().Dragging())
	pp, placed := m.Session().Placement("L1")
	require.True(t, placed)
	assert.Equal(t, core.P(2, 1), pp.Anchor)

	// Drag it from the board onto the tray to remove it.
	tray := m.layout().Tray
	m = press(t, m,
		mouse(target.X+2, target.Y+screenTop, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(tray.X+10, tray.Y+1+screenTop, tea.MouseActionMotion, tea.MouseButtonLeft),
		mouse(tray.X+10, tray.Y+1+screenTop, tea.MouseActionRelease, tea.MouseButtonLeft),
	)
	_, placed = m.Session().Placement("L1")
	assert.False(t, placed)
	assert.Len(t, m.Session().Unplaced(), 14)
}

func TestRightClickRotates(t *testing.T) {
	m := newTestGame(t, nil)
	first := m.layout().Items[0]

	m = press(t, m, mouse(first.Rect.X, first.Rect.Y+screenTop, tea.MouseActionPress, tea.MouseButtonRight))
	pi, err := m.Session().Piece("L1")
	require.NoError(t, err)
	assert.Equal(t, core.Rot90, pi.Orientation.Rotation)
	assert.Equal(t, core.ShapeID("L1"), m.Session().Selected())
}

func TestPauseBlocksMoves(t *testing.T) {
	m := newTestGame(t, nil)
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
		runeKey('p'),
	)
	assert.Equal(t, dayfill.StatusPaused, m.Session().Status())

	m = press(t, m, runeKey('x'))
	assert.Len(t, m.Session().Placed(), 1)
	assert.Contains(t, m.View(), "PAUSED")

	m = press(t, m, runeKey('p'), runeKey('x'))
	assert.Equal(t, dayfill.StatusPlaying, m.Session().Status())
	assert.Empty(t, m.Session().Placed())
}

func TestShareCodeShown(t *testing.T) {
	m := newTestGame(t, nil)
	m = press(t, m, runeKey('c'))
	require.NotEmpty(t, m.shareCode)
	assert.Contains(t, m.View(), m.shareCode)

	// Any board change hides the stale code.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runeKey('r'))
	assert.Empty(t, m.shareCode)
}

func TestViewShowsBoard(t *testing.T) {
	m := newTestGame(t, nil)
	view := m.View()

	for _, want := range []string{"DAYFILL", "Fri 15 Mar 2024", "Jan", "Dec", "31", "Sun", "L1", "S1"} {
		assert.Contains(t, view, want)
	}
}

func TestBackQuitsStandalone(t *testing.T) {
	m := newTestGame(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd, "embedded game hands control back without quitting")

	m = newTestGame(t, nil)
	m.standalone = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, next.(GameModel).quitting)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", formatElapsed(0))
	assert.Equal(t, "03:07", formatElapsed(3*time.Minute+7*time.Second+400*time.Millisecond))
	assert.Equal(t, "1:02:03", formatElapsed(time.Hour+2*time.Minute+3*time.Second))
}

func TestHintText(t *testing.T) {
	assert.Equal(t, "hints off", hintText(0, -1))
	assert.Equal(t, "hints 4", hintText(4, 0))
	assert.True(t, strings.HasSuffix(hintText(1, 3), "1/3"))
}
