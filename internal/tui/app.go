package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/config"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/gemini"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/logging"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/pipeline"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/messages"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/screens"
)

// Screen represents the current screen state
type Screen int

const (
	ScreenSetup Screen = iota
	ScreenStudio
)

// Model is the main application model
type Model struct {
	// Configuration
	config *config.Config
	log    zerolog.Logger

	// Pipeline wiring
	controller *pipeline.Controller
	updates    chan []*models.Scene

	// Current screen
	screen Screen

	// Screen models
	setupScreen  screens.SetupModel
	studioScreen screens.StudioModel

	// Window size
	width  int
	height int

	// Error state
	err error

	// Context for cancellation
	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new application model
func NewModel(cfg *config.Config, logger zerolog.Logger) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		config: cfg,
		log:    logger,
		ctx:    ctx,
		cancel: cancel,
	}

	m.setupScreen = screens.NewSetupModel()

	if cfg.HasKey() {
		m.connect(cfg.ResolvedKey())
		m.screen = ScreenStudio
	} else {
		m.screen = ScreenSetup
	}

	return m
}

// connect builds the generation stack for the given API key
func (m *Model) connect(apiKey string) {
	client := gemini.NewClient(apiKey, m.log)

	// Buffered so streamed pipeline emissions never block on the UI loop
	updates := make(chan []*models.Scene, 64)
	m.updates = updates

	m.controller = pipeline.New(newGenerator(client), func(scenes []*models.Scene) {
		updates <- scenes
	}, m.log)

	m.studioScreen = screens.NewStudioModel(m.controller, m.ctx, m.config.Style, m.config.AspectRatio)

	m.log.Info().Str("key", logging.SanitizeKey(apiKey)).Msg("connected")
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("Director.AI"),
	}

	switch m.screen {
	case ScreenSetup:
		cmds = append(cmds, m.setupScreen.Init())
	case ScreenStudio:
		cmds = append(cmds, m.studioScreen.Init(), m.listenCmd())
	}

	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setupScreen.SetSize(msg.Width, msg.Height)
		m.studioScreen.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global key handlers
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}

	case messages.KeyConnectedMsg:
		m.config.APIKey = msg.APIKey
		if err := m.config.Save(); err != nil {
			m.err = err
		}

		m.connect(msg.APIKey)
		m.screen = ScreenStudio
		m.studioScreen.SetSize(m.width, m.height)
		cmds = append(cmds, m.studioScreen.Init(), m.listenCmd())

	case messages.ScenesUpdatedMsg:
		m.studioScreen.SetScenes(msg.Scenes)
		cmds = append(cmds, m.listenCmd())

	case messages.RunFinishedMsg:
		// Persist the form selections as the new defaults
		m.config.Style = m.studioScreen.Style()
		m.config.AspectRatio = m.studioScreen.AspectRatio()
		if err := m.config.Save(); err != nil {
			m.err = err
		}

	case messages.ErrorMsg:
		m.err = msg.Err
	}

	// Route to current screen
	switch m.screen {
	case ScreenSetup:
		var cmd tea.Cmd
		m.setupScreen, cmd = m.setupScreen.Update(msg)
		cmds = append(cmds, cmd)

	case ScreenStudio:
		var cmd tea.Cmd
		m.studioScreen, cmd = m.studioScreen.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the current screen
func (m Model) View() string {
	switch m.screen {
	case ScreenSetup:
		return m.setupScreen.View()
	case ScreenStudio:
		return m.studioScreen.View()
	default:
		return "Unknown screen"
	}
}

// listenCmd waits for the next pipeline snapshot. It is re-armed after
// every delivery.
func (m Model) listenCmd() tea.Cmd {
	updates := m.updates
	return func() tea.Msg {
		return messages.ScenesUpdatedMsg{Scenes: <-updates}
	}
}
