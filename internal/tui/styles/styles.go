package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - dark studio theme with a cyan accent
var (
	// Primary colors
	ColorPrimary    = lipgloss.Color("#22D3EE") // Cyan
	ColorSecondary  = lipgloss.Color("#A78BFA") // Purple
	ColorAccent     = lipgloss.Color("#CFFAFE") // Light cyan
	ColorBackground = lipgloss.Color("#0A0A0F") // Near black
	ColorSurface    = lipgloss.Color("#1C1C28") // Surface color
	ColorSurfaceAlt = lipgloss.Color("#2C2C3C") // Alternate surface

	// Text colors
	ColorText        = lipgloss.Color("#FAFAFA") // Primary text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextDim     = lipgloss.Color("#5C5C70") // Dim text
	ColorTextInverse = lipgloss.Color("#0A0A0F") // Inverse text

	// State colors
	ColorSuccess = lipgloss.Color("#34D399") // Green
	ColorWorking = lipgloss.Color("#FBBF24") // Amber
	ColorError   = lipgloss.Color("#F87171") // Red
)

// Styles for various UI components
var (
	// Header styles
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextInverse).
			Background(ColorPrimary).
			Padding(0, 2)

	StyleTagline = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	// Scene card styles
	StyleSceneCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurfaceAlt).
			Padding(0, 1).
			MarginRight(1)

	StyleSceneCardSelected = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1).
				MarginRight(1)

	StyleSceneTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	StyleSceneSentence = lipgloss.NewStyle().
				Foreground(ColorText)

	StylePrompt = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Status badges
	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	StyleStatusWorking = lipgloss.NewStyle().
				Foreground(ColorWorking).
				Bold(true)

	StyleStatusDone = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	// Input styles
	StyleInput = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorSurfaceAlt).
			Padding(0, 1)

	StyleInputFocused = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StyleLabelFocused = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	// Selector styles
	StyleSelectorValue = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 1)

	StyleSelectorFocused = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Padding(0, 1)

	// Button styles
	StyleButton = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			Padding(0, 2)

	StyleButtonFocused = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 2)

	// Help styles
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			MarginTop(1)

	StyleHelpKey = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Loading/spinner styles
	StyleSpinner = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Error styles
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Success styles
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// Text muted style
	StyleTextMuted = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Primary style
	StylePrimary = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)
