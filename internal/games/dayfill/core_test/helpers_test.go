package core_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// march15 is a Friday.
var march15 = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func gridFor(t *testing.T, date time.Time) *core.Grid {
	t.Helper()
	target, err := core.TargetForDate(core.DefaultLayout(), date)
	require.NoError(t, err)
	g, err := core.NewGrid(core.DefaultLayout(), target)
	require.NoError(t, err)
	return g
}

func ledgerFor(t *testing.T, date time.Time) *core.Ledger {
	t.Helper()
	return core.NewLedger(core.DefaultCatalog(), gridFor(t, date))
}

// dotCatalog returns n single-cell pieces D01..Dnn.
func dotCatalog(n int) *core.Catalog {
	shapes := make([]core.Shape, n)
	for i := range shapes {
		shapes[i] = core.Shape{
			ID:     core.ShapeID(fmt.Sprintf("D%02d", i+1)),
			Matrix: core.ParseMatrix("#"),
		}
	}
	return core.MustCatalog(shapes)
}

// fakeOccupancy is a set of covered cells.
type fakeOccupancy map[core.Position]bool

func (f fakeOccupancy) IsOccupied(p core.Position) bool { return f[p] }
