package models

import "testing"

func TestNewScenes(t *testing.T) {
	scenes := NewScenes("The last man on Earth sat alone.", "There was a knock on the door.")

	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}

	for i, scene := range scenes {
		if scene.ID != i+1 {
			t.Errorf("Scene %d: expected ID %d, got %d", i, i+1, scene.ID)
		}
		if scene.Status != StatusIdle {
			t.Errorf("Scene %d: expected idle status, got %s", i, scene.Status)
		}
	}

	if scenes[0].OriginalSentence != "The last man on Earth sat alone." {
		t.Errorf("Scene 1 sentence mismatch: %q", scenes[0].OriginalSentence)
	}
}

func TestSceneStatusString(t *testing.T) {
	tests := []struct {
		status SceneStatus
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusExpanding, "expanding"},
		{StatusSynthesizing, "synthesizing"},
		{StatusRefining, "refining"},
		{StatusCompleted, "completed"},
		{StatusError, "error"},
		{SceneStatus(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSceneInProgress(t *testing.T) {
	tests := []struct {
		status SceneStatus
		want   bool
	}{
		{StatusIdle, false},
		{StatusExpanding, true},
		{StatusSynthesizing, true},
		{StatusRefining, true},
		{StatusCompleted, false},
		{StatusError, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			s := &Scene{Status: tt.status}
			if got := s.InProgress(); got != tt.want {
				t.Errorf("InProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSceneClone(t *testing.T) {
	asset := &Asset{MIMEType: "image/png", Data: []byte{1, 2, 3}}
	s := &Scene{
		ID:               1,
		OriginalSentence: "original",
		ExpandedPrompt:   "expanded",
		Image:            asset,
		Status:           StatusCompleted,
	}

	clone := s.Clone()
	clone.ExpandedPrompt = "edited"
	clone.Status = StatusError

	if s.ExpandedPrompt != "expanded" {
		t.Error("Clone mutation leaked into original prompt")
	}
	if s.Status != StatusCompleted {
		t.Error("Clone mutation leaked into original status")
	}
	// Assets are shared intentionally
	if clone.Image != asset {
		t.Error("Expected clone to share the asset pointer")
	}
}

func TestFindByID(t *testing.T) {
	scenes := NewScenes("one", "two")

	if s := FindByID(scenes, 2); s == nil || s.OriginalSentence != "two" {
		t.Errorf("FindByID(2) returned %+v", s)
	}
	if s := FindByID(scenes, 3); s != nil {
		t.Errorf("Expected nil for unknown ID, got %+v", s)
	}
}

func TestAssetExt(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"video/mp4", ".mp4"},
		{"video/webm", ".webm"},
		{"video/quicktime", ".mp4"},
		{"application/octet-stream", ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			a := &Asset{MIMEType: tt.mime}
			if got := a.Ext(); got != tt.want {
				t.Errorf("Ext() = %q, want %q", got, tt.want)
			}
		})
	}
}
