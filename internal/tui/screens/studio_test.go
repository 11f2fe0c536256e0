package screens

import (
	"context"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/pipeline"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/messages"
)

func newTestStudio() StudioModel {
	ctrl := pipeline.New(nil, nil, zerolog.Nop())
	return NewStudioModel(ctrl, context.Background(), "Noir Horror", "16:9")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestStudioDefaultSelections(t *testing.T) {
	m := newTestStudio()

	if m.Style() != "Noir Horror" {
		t.Errorf("Style = %q", m.Style())
	}
	if m.AspectRatio() != "16:9" {
		t.Errorf("AspectRatio = %q", m.AspectRatio())
	}

	// Unknown defaults fall back to the first option
	m = NewStudioModel(nil, context.Background(), "not a style", "4:3")
	if m.Style() != models.StyleOptions[0] {
		t.Errorf("Fallback style = %q", m.Style())
	}
	if m.AspectRatio() != models.AspectRatios[0] {
		t.Errorf("Fallback aspect = %q", m.AspectRatio())
	}
}

func TestStudioFocusCycle(t *testing.T) {
	m := newTestStudio()

	want := []studioFocus{focusSentence2, focusStyle, focusAspect, focusGenerate, focusSentence1}
	for i, expected := range want {
		m, _ = m.Update(keyMsg("tab"))
		if m.focus != expected {
			t.Fatalf("Step %d: focus = %d, want %d", i, m.focus, expected)
		}
	}
}

func TestStudioFocusIncludesScenesWhenPresent(t *testing.T) {
	m := newTestStudio()
	m.SetScenes(models.NewScenes("one", "two"))
	m.focus = focusGenerate

	m, _ = m.Update(keyMsg("tab"))
	if m.focus != focusScenes {
		t.Errorf("Expected scene focus, got %d", m.focus)
	}
}

func TestStudioTypingFillsSentences(t *testing.T) {
	m := newTestStudio()

	m, _ = m.Update(keyMsg("It waits."))
	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("So do I."))

	if got := m.sentence1.Value(); got != "It waits." {
		t.Errorf("Sentence 1 = %q", got)
	}
	if got := m.sentence2.Value(); got != "So do I." {
		t.Errorf("Sentence 2 = %q", got)
	}
}

func TestStudioStyleSelectorCycles(t *testing.T) {
	m := newTestStudio()
	m.focus = focusStyle

	first := m.Style()
	m, _ = m.Update(keyMsg("l"))
	if m.Style() == first {
		t.Error("Expected the style to advance")
	}
	m, _ = m.Update(keyMsg("h"))
	if m.Style() != first {
		t.Errorf("Expected the style to cycle back, got %q", m.Style())
	}
}

func TestStudioRunLocksInput(t *testing.T) {
	m := newTestStudio()
	m.running = true

	m, _ = m.Update(keyMsg("abc"))
	if m.sentence1.Value() != "" {
		t.Error("Typing must be ignored while a run is in flight")
	}

	m, _ = m.Update(keyMsg("tab"))
	if m.focus != focusSentence1 {
		t.Error("Focus must not move while a run is in flight")
	}
}

func TestStudioSceneSelection(t *testing.T) {
	m := newTestStudio()
	m.SetScenes(models.NewScenes("one", "two"))
	m.focus = focusScenes

	m, _ = m.Update(keyMsg("l"))
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1", m.selected)
	}
	m, _ = m.Update(keyMsg("l"))
	if m.selected != 1 {
		t.Error("Selection must not run past the last scene")
	}
	m, _ = m.Update(keyMsg("h"))
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0", m.selected)
	}
}

func TestStudioSaveImageWritesFile(t *testing.T) {
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	m := newTestStudio()
	scenes := models.NewScenes("one", "two")
	scenes[0].Image = &models.Asset{MIMEType: "image/png", Data: []byte("img-bytes")}
	m.SetScenes(scenes)
	m.focus = focusScenes

	_, cmd := m.Update(keyMsg("s"))
	if cmd == nil {
		t.Fatal("Expected a save command")
	}

	msg := cmd()
	saved, ok := msg.(messages.AssetSavedMsg)
	if !ok {
		t.Fatalf("Expected AssetSavedMsg, got %T", msg)
	}
	if saved.Path != "scene-01.png" {
		t.Errorf("Path = %q", saved.Path)
	}

	data, err := os.ReadFile(saved.Path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "img-bytes" {
		t.Errorf("Saved bytes = %q", data)
	}
}

func TestStudioSaveRequiresAsset(t *testing.T) {
	m := newTestStudio()
	m.SetScenes(models.NewScenes("one", "two"))
	m.focus = focusScenes

	_, cmd := m.Update(keyMsg("s"))
	if cmd != nil {
		t.Error("No save command expected without an image")
	}
	_, cmd = m.Update(keyMsg("d"))
	if cmd != nil {
		t.Error("No save command expected without a video")
	}
}

func TestStudioNudgeRequiresImage(t *testing.T) {
	m := newTestStudio()
	m.SetScenes(models.NewScenes("one", "two"))
	m.focus = focusScenes

	m, _ = m.Update(keyMsg("n"))
	if m.mode != editNone {
		t.Error("Nudge overlay must not open without an image")
	}

	scenes := models.NewScenes("one", "two")
	scenes[0].Image = &models.Asset{MIMEType: "image/png", Data: []byte("img")}
	m.SetScenes(scenes)

	m, _ = m.Update(keyMsg("n"))
	if m.mode != editNudge {
		t.Error("Expected the nudge overlay to open")
	}
}

func TestStudioEditOverlayEscCancels(t *testing.T) {
	m := newTestStudio()
	m.SetScenes(models.NewScenes("one", "two"))
	m.focus = focusScenes

	m, _ = m.Update(keyMsg("e"))
	if m.mode != editPrompt {
		t.Fatal("Expected the prompt overlay to open")
	}

	m, _ = m.Update(keyMsg("esc"))
	if m.mode != editNone {
		t.Error("Expected esc to close the overlay")
	}
}
