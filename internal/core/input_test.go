package core

import "testing"

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(999).String() != "Unknown" || Action(-1).String() != "Unknown" {
		t.Error("out-of-range actions should be Unknown")
	}
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == "" {
			t.Errorf("action %d has no name", a)
		}
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dr, dc int
		ok     bool
	}{
		{ActionUp, -1, 0, true},
		{ActionDown, 1, 0, true},
		{ActionLeft, 0, -1, true},
		{ActionRight, 0, 1, true},
		{ActionPlace, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dr, dc, ok := tc.action.Direction()
			if dr != tc.dr || dc != tc.dc || ok != tc.ok {
				t.Errorf("Direction() = (%d, %d, %v), expected (%d, %d, %v)", dr, dc, ok, tc.dr, tc.dc, tc.ok)
			}
		})
	}
}

func TestActionMutates(t *testing.T) {
	for _, a := range []Action{ActionPlace, ActionRemove, ActionRotate, ActionFlipH, ActionFlipV, ActionUndo, ActionReset} {
		if !a.Mutates() {
			t.Errorf("%s should mutate", a)
		}
	}
	for _, a := range []Action{ActionUp, ActionHint, ActionPause, ActionShare, ActionQuit} {
		if a.Mutates() {
			t.Errorf("%s should not mutate", a)
		}
	}
}

func TestRuntimeConfigWithSize(t *testing.T) {
	cfg := DefaultConfig().WithSize(120, 0)
	if cfg.ScreenW != 120 || cfg.ScreenH != 24 {
		t.Errorf("WithSize(120, 0) = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}
