package models

// SceneStatus tracks where a scene is in the generation pipeline
type SceneStatus int

const (
	// StatusIdle means the scene has not been processed yet
	StatusIdle SceneStatus = iota
	// StatusExpanding means the prompt expansion stage is running
	StatusExpanding
	// StatusSynthesizing means an image or video is being generated
	StatusSynthesizing
	// StatusRefining means a nudge edit is being applied to the image
	StatusRefining
	// StatusCompleted means the scene holds a finished asset
	StatusCompleted
	// StatusError means a stage failed; ErrMessage holds the reason
	StatusError
)

// String returns a display label for the status
func (s SceneStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusExpanding:
		return "expanding"
	case StatusSynthesizing:
		return "synthesizing"
	case StatusRefining:
		return "refining"
	case StatusCompleted:
		return "completed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Scene is one unit of work derived from one input sentence
type Scene struct {
	// Stable identifier within a run, used to correlate updates
	ID int
	// The sentence as typed by the user, immutable
	OriginalSentence string
	// Expanded visual directive; filled incrementally while streaming,
	// user-editable once populated
	ExpandedPrompt string
	// Free-text edit instruction for the nudge stage; cleared after a
	// successful edit
	NudgePrompt string
	// Generated still image (nil until synthesis succeeds)
	Image *Asset
	// Generated video clip (nil until video synthesis succeeds)
	Video *Asset
	// Current pipeline stage
	Status SceneStatus
	// Failure message when Status == StatusError
	ErrMessage string
}

// NewScenes builds one idle scene per sentence with IDs starting at 1
func NewScenes(sentences ...string) []*Scene {
	scenes := make([]*Scene, len(sentences))
	for i, sentence := range sentences {
		scenes[i] = &Scene{
			ID:               i + 1,
			OriginalSentence: sentence,
			Status:           StatusIdle,
		}
	}
	return scenes
}

// SetError marks the scene as failed with the given message
func (s *Scene) SetError(msg string) {
	s.Status = StatusError
	s.ErrMessage = msg
}

// InProgress returns true while a stage is running for this scene
func (s *Scene) InProgress() bool {
	switch s.Status {
	case StatusExpanding, StatusSynthesizing, StatusRefining:
		return true
	}
	return false
}

// Clone creates a copy of the scene. Assets are shared, not copied: an
// Asset is never mutated after creation, only replaced.
func (s *Scene) Clone() *Scene {
	clone := *s
	return &clone
}

// CloneAll clones every scene in the slice
func CloneAll(scenes []*Scene) []*Scene {
	out := make([]*Scene, len(scenes))
	for i, s := range scenes {
		out[i] = s.Clone()
	}
	return out
}

// FindByID returns the scene with the given ID, or nil
func FindByID(scenes []*Scene, id int) *Scene {
	for _, s := range scenes {
		if s.ID == id {
			return s
		}
	}
	return nil
}
