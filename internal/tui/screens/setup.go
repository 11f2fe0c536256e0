package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/messages"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/styles"
)

// SetupModel is the API key entry screen model
type SetupModel struct {
	input textinput.Model
	err   string

	width  int
	height int
}

// NewSetupModel creates a new setup screen model
func NewSetupModel() SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Paste your Gemini API key"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 128
	ti.Width = 48
	ti.Focus()

	return SetupModel{input: ti}
}

// Init initializes the setup screen
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the terminal size
func (m *SetupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages
func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			key := strings.TrimSpace(m.input.Value())
			if key == "" {
				m.err = "An API key is required"
				return m, nil
			}
			// The key is stored as entered; the first generation call
			// surfaces an invalid key
			return m, func() tea.Msg {
				return messages.KeyConnectedMsg{APIKey: key}
			}
		case "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the setup screen
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString(styles.StylePrimary.Render("Connect to Gemini"))
	b.WriteString("\n\n")
	b.WriteString(styles.StyleTextMuted.Render("Your key stays on this machine."))
	b.WriteString("\n\n")
	b.WriteString(styles.StyleInputFocused.Render(m.input.View()))
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n" + styles.StyleError.Render(m.err) + "\n")
	}

	b.WriteString("\n" + styles.StyleHelp.Render(
		styles.StyleHelpKey.Render("enter")+" connect  "+
			styles.StyleHelpKey.Render("esc")+" quit"))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
