package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with uncolored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', FG: ColorRed, BG: ColorGray})
	s.Set(5, 5, 'Y')
	c := s.GetCell(5, 5)
	if c.Rune != 'Y' || c.FG != ColorRed || c.BG != ColorGray {
		t.Errorf("Set should keep colors, got %+v", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), Cell{Rune: 'X', BG: ColorOrange})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.FillRect(NewRect(0, 1, 20, 1), Cell{Rune: ' ', BG: ColorDarkGray})
	s.DrawText(2, 1, "Jan", ColorYellow)

	for i, ch := range "Jan" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.FG != ColorYellow {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
		if c.BG != ColorDarkGray {
			t.Errorf("DrawText should keep background, got %q", c.BG)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	// Multi-byte runes occupy one cell each
	s.DrawText(0, 3, "·█·", ColorDefault)
	if s.Get(1, 3) != '█' || s.Get(2, 3) != '·' {
		t.Errorf("multi-byte text misplaced: %q", s.Row(3))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(NewRect(0, 0, 20, 5), 2, "Hi", ColorDefault)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}

	// Centered within a sub-rect; overlong text starts at the rect edge
	s.DrawTextCentered(NewRect(10, 0, 4, 1), 0, "Sat", ColorDefault)
	if s.Row(0)[10:13] != "Sat" {
		t.Errorf("centered in rect: %q", s.Row(0))
	}
	s.DrawTextCentered(NewRect(4, 0, 2, 1), 4, "Long", ColorDefault)
	if !strings.HasPrefix(s.Row(4)[4:], "Long") {
		t.Errorf("overlong text should start at rect edge: %q", s.Row(4))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	fill := Cell{Rune: '#', BG: ColorGreen}
	s.FillRect(NewRect(2, 2, 3, 3), fill)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y) != fill {
				t.Errorf("FillRect: expected fill at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}

	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorRed)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorGreen)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorRed)
	s.DrawText(0, 5, "World", ColorDefault)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}
	if s.GetCell(0, 0).FG != ColorRed {
		t.Error("Colors should be preserved on resize")
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}

	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Error("negative sizes should clamp to an empty screen")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
