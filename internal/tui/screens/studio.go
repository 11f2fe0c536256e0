package screens

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/pipeline"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/components"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/messages"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/styles"
)

// studioFocus identifies which control owns keyboard input
type studioFocus int

const (
	focusSentence1 studioFocus = iota
	focusSentence2
	focusStyle
	focusAspect
	focusGenerate
	focusScenes
)

// editMode identifies the overlay input target
type editMode int

const (
	editNone editMode = iota
	editNudge
	editPrompt
)

// StudioModel is the production workspace screen model
type StudioModel struct {
	controller *pipeline.Controller
	ctx        context.Context

	scenes   []*models.Scene
	selected int

	sentence1 textinput.Model
	sentence2 textinput.Model
	styleIdx  int
	aspectIdx int

	editInput textinput.Model
	mode      editMode

	focus   studioFocus
	running bool
	busy    bool
	spinner spinner.Model

	status string

	width  int
	height int
}

// NewStudioModel creates a new studio screen model. The defaults seed
// the style and aspect ratio selectors.
func NewStudioModel(ctrl *pipeline.Controller, ctx context.Context, defaultStyle, defaultAspect string) StudioModel {
	s1 := textinput.New()
	s1.Placeholder = "First sentence of your story..."
	s1.CharLimit = 280
	s1.Width = 60
	s1.Focus()

	s2 := textinput.New()
	s2.Placeholder = "Second sentence of your story..."
	s2.CharLimit = 280
	s2.Width = 60

	edit := textinput.New()
	edit.CharLimit = 1000
	edit.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StyleSpinner

	return StudioModel{
		controller: ctrl,
		ctx:        ctx,
		sentence1:  s1,
		sentence2:  s2,
		editInput:  edit,
		styleIdx:   indexOf(models.StyleOptions, defaultStyle),
		aspectIdx:  indexOf(models.AspectRatios, defaultAspect),
		spinner:    sp,
	}
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

// Init initializes the studio screen
func (m StudioModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the terminal size
func (m *StudioModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetScenes replaces the rendered scene snapshot
func (m *StudioModel) SetScenes(scenes []*models.Scene) {
	m.scenes = scenes
	if m.selected >= len(scenes) {
		m.selected = 0
	}
}

// Style returns the currently selected visual style
func (m StudioModel) Style() string {
	return models.StyleOptions[m.styleIdx]
}

// AspectRatio returns the currently selected aspect ratio
func (m StudioModel) AspectRatio() string {
	return models.AspectRatios[m.aspectIdx]
}

func (m StudioModel) opts() pipeline.RunOptions {
	return pipeline.RunOptions{Style: m.Style(), AspectRatio: m.AspectRatio()}
}

func (m StudioModel) selectedScene() *models.Scene {
	if m.selected >= 0 && m.selected < len(m.scenes) {
		return m.scenes[m.selected]
	}
	return nil
}

// Update handles messages
func (m StudioModel) Update(msg tea.Msg) (StudioModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case messages.RunFinishedMsg:
		m.running = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else {
			m.status = ""
			m.setFocus(focusScenes)
		}

	case messages.ActionFinishedMsg:
		m.busy = false

	case messages.AssetSavedMsg:
		m.status = "Saved " + msg.Path

	case messages.ErrorMsg:
		m.status = msg.Err.Error()

	case spinner.TickMsg:
		if m.running || m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m StudioModel) handleKey(msg tea.KeyMsg) (StudioModel, tea.Cmd) {
	// Overlay input captures everything until committed or cancelled
	if m.mode != editNone {
		switch msg.String() {
		case "enter":
			return m.commitEdit()
		case "esc":
			m.mode = editNone
			m.editInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.editInput, cmd = m.editInput.Update(msg)
			return m, cmd
		}
	}

	// A run locks the whole form
	if m.running || m.busy {
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
		return m, textinput.Blink
	case "shift+tab":
		m.cycleFocus(-1)
		return m, textinput.Blink
	}

	switch m.focus {
	case focusSentence1:
		if msg.String() == "enter" {
			m.setFocus(focusSentence2)
			return m, textinput.Blink
		}
		var cmd tea.Cmd
		m.sentence1, cmd = m.sentence1.Update(msg)
		return m, cmd

	case focusSentence2:
		if msg.String() == "enter" {
			m.setFocus(focusStyle)
			return m, nil
		}
		var cmd tea.Cmd
		m.sentence2, cmd = m.sentence2.Update(msg)
		return m, cmd

	case focusStyle:
		switch msg.String() {
		case "left", "h":
			m.styleIdx = (m.styleIdx + len(models.StyleOptions) - 1) % len(models.StyleOptions)
		case "right", "l", "enter":
			m.styleIdx = (m.styleIdx + 1) % len(models.StyleOptions)
		}

	case focusAspect:
		switch msg.String() {
		case "left", "h":
			m.aspectIdx = (m.aspectIdx + len(models.AspectRatios) - 1) % len(models.AspectRatios)
		case "right", "l", "enter":
			m.aspectIdx = (m.aspectIdx + 1) % len(models.AspectRatios)
		}

	case focusGenerate:
		if msg.String() == "enter" {
			return m.startRun()
		}

	case focusScenes:
		return m.handleSceneKey(msg)
	}

	return m, nil
}

func (m StudioModel) handleSceneKey(msg tea.KeyMsg) (StudioModel, tea.Cmd) {
	scene := m.selectedScene()

	switch msg.String() {
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}

	case "right", "l":
		if m.selected < len(m.scenes)-1 {
			m.selected++
		}

	case "r":
		if scene != nil {
			m.busy = true
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.regenerateCmd(scene.ID))
		}

	case "n":
		if scene != nil && scene.Image != nil {
			m.mode = editNudge
			m.editInput.SetValue(scene.NudgePrompt)
			m.editInput.Placeholder = "Describe the adjustment, e.g. \"make it darker\""
			m.editInput.Focus()
			return m, textinput.Blink
		}

	case "e":
		if scene != nil {
			m.mode = editPrompt
			m.editInput.SetValue(scene.ExpandedPrompt)
			m.editInput.Placeholder = "Expanded prompt"
			m.editInput.Focus()
			return m, textinput.Blink
		}

	case "v":
		if scene != nil {
			m.busy = true
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, m.videoCmd(scene.ID))
		}

	case "s":
		if scene != nil && scene.Image != nil {
			return m, m.saveAssetCmd(scene.ID, scene.Image)
		}

	case "d":
		if scene != nil && scene.Video != nil {
			return m, m.saveAssetCmd(scene.ID, scene.Video)
		}
	}

	return m, nil
}

func (m StudioModel) commitEdit() (StudioModel, tea.Cmd) {
	scene := m.selectedScene()
	mode := m.mode
	value := m.editInput.Value()

	m.mode = editNone
	m.editInput.Blur()

	if scene == nil {
		return m, nil
	}

	switch mode {
	case editNudge:
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		m.busy = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.refineCmd(scene.ID, value))

	case editPrompt:
		m.controller.SetExpandedPrompt(scene.ID, value)
	}

	return m, nil
}

func (m StudioModel) startRun() (StudioModel, tea.Cmd) {
	m.running = true
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, m.runCmd())
}

// setFocus moves keyboard focus, keeping text input state in sync
func (m *StudioModel) setFocus(f studioFocus) {
	if f == focusScenes && len(m.scenes) == 0 {
		f = focusSentence1
	}
	m.focus = f

	m.sentence1.Blur()
	m.sentence2.Blur()
	switch f {
	case focusSentence1:
		m.sentence1.Focus()
	case focusSentence2:
		m.sentence2.Focus()
	}
}

func (m *StudioModel) cycleFocus(dir int) {
	order := []studioFocus{focusSentence1, focusSentence2, focusStyle, focusAspect, focusGenerate}
	if len(m.scenes) > 0 {
		order = append(order, focusScenes)
	}

	current := 0
	for i, f := range order {
		if f == m.focus {
			current = i
			break
		}
	}
	m.setFocus(order[(current+dir+len(order))%len(order)])
}

// Commands

func (m StudioModel) runCmd() tea.Cmd {
	ctrl := m.controller
	ctx := m.ctx
	s1 := m.sentence1.Value()
	s2 := m.sentence2.Value()
	opts := m.opts()
	return func() tea.Msg {
		return messages.RunFinishedMsg{Err: ctrl.Run(ctx, s1, s2, opts)}
	}
}

func (m StudioModel) regenerateCmd(sceneID int) tea.Cmd {
	ctrl := m.controller
	ctx := m.ctx
	opts := m.opts()
	return func() tea.Msg {
		return messages.ActionFinishedMsg{SceneID: sceneID, Err: ctrl.RegenerateImage(ctx, sceneID, opts)}
	}
}

func (m StudioModel) refineCmd(sceneID int, instruction string) tea.Cmd {
	ctrl := m.controller
	ctx := m.ctx
	opts := m.opts()
	return func() tea.Msg {
		return messages.ActionFinishedMsg{SceneID: sceneID, Err: ctrl.RefineImage(ctx, sceneID, instruction, opts)}
	}
}

func (m StudioModel) videoCmd(sceneID int) tea.Cmd {
	ctrl := m.controller
	ctx := m.ctx
	opts := m.opts()
	return func() tea.Msg {
		return messages.ActionFinishedMsg{SceneID: sceneID, Err: ctrl.GenerateVideo(ctx, sceneID, opts)}
	}
}

func (m StudioModel) saveAssetCmd(sceneID int, asset *models.Asset) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("scene-%02d%s", sceneID, asset.Ext())
		if err := os.WriteFile(path, asset.Data, 0o644); err != nil {
			return messages.ErrorMsg{Err: fmt.Errorf("failed to save asset: %w", err)}
		}
		return messages.AssetSavedMsg{Path: path}
	}
}

// View renders the studio screen
func (m StudioModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(m.width))
	b.WriteString("\n\n")

	b.WriteString(m.renderForm())
	b.WriteString("\n")

	if len(m.scenes) > 0 {
		b.WriteString(m.renderScenes())
		b.WriteString("\n")
	}

	if m.mode != editNone {
		b.WriteString(m.renderEditOverlay())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m StudioModel) renderForm() string {
	var b strings.Builder

	label := func(text string, focused bool) string {
		if focused {
			return styles.StyleLabelFocused.Render(text)
		}
		return styles.StyleLabel.Render(text)
	}
	inputStyle := func(focused bool) lipgloss.Style {
		if focused {
			return styles.StyleInputFocused
		}
		return styles.StyleInput
	}

	b.WriteString(label("Sentence 1", m.focus == focusSentence1))
	b.WriteString("\n")
	b.WriteString(inputStyle(m.focus == focusSentence1).Render(m.sentence1.View()))
	b.WriteString("\n")
	b.WriteString(label("Sentence 2", m.focus == focusSentence2))
	b.WriteString("\n")
	b.WriteString(inputStyle(m.focus == focusSentence2).Render(m.sentence2.View()))
	b.WriteString("\n\n")

	styleSel := styles.StyleSelectorValue
	if m.focus == focusStyle {
		styleSel = styles.StyleSelectorFocused
	}
	aspectSel := styles.StyleSelectorValue
	if m.focus == focusAspect {
		aspectSel = styles.StyleSelectorFocused
	}

	b.WriteString(styles.StyleLabel.Render("Style "))
	b.WriteString(styleSel.Render("◂ " + m.Style() + " ▸"))
	b.WriteString(styles.StyleLabel.Render("  Aspect "))
	b.WriteString(aspectSel.Render("◂ " + m.AspectRatio() + " ▸"))
	b.WriteString("  ")

	button := styles.StyleButton
	if m.focus == focusGenerate {
		button = styles.StyleButtonFocused
	}
	if m.running {
		b.WriteString(m.spinner.View() + " " + styles.StyleTextMuted.Render("Producing..."))
	} else {
		b.WriteString(button.Render("▶ Generate"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m StudioModel) renderScenes() string {
	cards := make([]string, 0, len(m.scenes))
	for i, scene := range m.scenes {
		selected := m.focus == focusScenes && i == m.selected
		cards = append(cards, components.RenderSceneCard(scene, selected, m.width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m StudioModel) renderEditOverlay() string {
	label := "Nudge"
	if m.mode == editPrompt {
		label = "Edit prompt"
	}
	scene := m.selectedScene()
	if scene != nil {
		label = fmt.Sprintf("%s (scene %02d)", label, scene.ID)
	}
	return styles.StyleLabelFocused.Render(label) + "\n" +
		styles.StyleInputFocused.Render(m.editInput.View())
}

func (m StudioModel) renderStatusLine() string {
	if m.busy {
		return m.spinner.View() + " " + styles.StyleTextMuted.Render("Working...")
	}
	if m.status == "" {
		return ""
	}
	if strings.HasPrefix(m.status, "Saved ") {
		return styles.StyleSuccess.Render(m.status)
	}
	return styles.StyleError.Render(m.status)
}

func (m StudioModel) renderHelp() string {
	if m.focus == focusScenes {
		keys := []string{
			styles.StyleHelpKey.Render("←→") + " select",
			styles.StyleHelpKey.Render("r") + " regenerate",
			styles.StyleHelpKey.Render("n") + " nudge",
			styles.StyleHelpKey.Render("e") + " edit prompt",
			styles.StyleHelpKey.Render("v") + " video",
			styles.StyleHelpKey.Render("s") + " save image",
			styles.StyleHelpKey.Render("d") + " save video",
			styles.StyleHelpKey.Render("tab") + " form",
			styles.StyleHelpKey.Render("ctrl+c") + " quit",
		}
		return styles.StyleHelp.Render(strings.Join(keys, "  "))
	}

	keys := []string{
		styles.StyleHelpKey.Render("tab") + " next field",
		styles.StyleHelpKey.Render("←→") + " change option",
		styles.StyleHelpKey.Render("enter") + " confirm",
		styles.StyleHelpKey.Render("ctrl+c") + " quit",
	}
	return styles.StyleHelp.Render(strings.Join(keys, "  "))
}
