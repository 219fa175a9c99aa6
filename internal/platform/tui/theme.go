package tui

import (
	"github.com/charmbracelet/lipgloss"

	platformcore "github.com/vovakirdan/dayfill/internal/core"
)

// Theme contains the colors used to draw the board and the lipgloss
// styles used for the surrounding text.
type Theme struct {
	// Board cell colors
	EmptyBG    platformcore.Color
	LabelFG    platformcore.Color
	TargetBG   platformcore.Color
	TargetFG   platformcore.Color
	PieceFG    platformcore.Color
	ConflictFG platformcore.Color
	CursorFG   platformcore.Color

	// Preview colors for drags and the keyboard ghost
	ValidBG   platformcore.Color
	InvalidBG platformcore.Color
	GhostBG   platformcore.Color // used when validity preview is off

	// Piece tray
	TrayLabel    platformcore.Color
	TraySelected platformcore.Color

	// Monochrome themes ignore catalog piece colors.
	PieceColors bool
	MonoPieceBG platformcore.Color

	// HUD styles
	HUDTitle  lipgloss.Style
	HUDValue  lipgloss.Style
	HUDDim    lipgloss.Style
	HUDAccent lipgloss.Style

	// Notice styles
	NoticeInfo    lipgloss.Style
	NoticeSuccess lipgloss.Style
	NoticeWarning lipgloss.Style
	NoticeError   lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Menu and history styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		EmptyBG:    platformcore.ColorDarkGray,
		LabelFG:    platformcore.ColorWhite,
		TargetBG:   platformcore.ColorYellow,
		TargetFG:   platformcore.ColorBlack,
		PieceFG:    platformcore.ColorBlack,
		ConflictFG: platformcore.ColorRed,
		CursorFG:   platformcore.ColorBrightWhite,

		ValidBG:   platformcore.ColorGreen,
		InvalidBG: platformcore.ColorRed,
		GhostBG:   platformcore.ColorGray,

		TrayLabel:    platformcore.ColorGray,
		TraySelected: platformcore.ColorOrange,

		PieceColors: true,
		MonoPieceBG: platformcore.ColorWhite,

		HUDTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDDim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NoticeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		NoticeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		NoticeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		OverlayBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		OverlayTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.TargetBG = platformcore.ColorBrightWhite
	theme.ConflictFG = platformcore.ColorBrightWhite
	theme.ValidBG = platformcore.ColorGray
	theme.InvalidBG = platformcore.ColorBlack
	theme.TraySelected = platformcore.ColorBrightWhite
	theme.PieceColors = false
	theme.HUDTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.HUDAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.NoticeSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.NoticeWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.NoticeError = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true)
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	return theme
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if name == "mono" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// pieceBG returns the fill color for a piece.
func (t Theme) pieceBG(hex string) platformcore.Color {
	if !t.PieceColors || hex == "" {
		return t.MonoPieceBG
	}
	return platformcore.Color(hex)
}
