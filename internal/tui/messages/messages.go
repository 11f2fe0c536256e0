package messages

import (
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
)

// KeyConnectedMsg carries the API key entered on the setup screen
type KeyConnectedMsg struct {
	APIKey string
}

// ScenesUpdatedMsg carries a fresh snapshot of all scenes
type ScenesUpdatedMsg struct {
	Scenes []*models.Scene
}

// RunFinishedMsg indicates the full pipeline run has returned
type RunFinishedMsg struct {
	Err error
}

// ActionFinishedMsg indicates a per-scene action has returned
type ActionFinishedMsg struct {
	SceneID int
	Err     error
}

// AssetSavedMsg confirms an asset was written to disk
type AssetSavedMsg struct {
	Path string
}

// ErrorMsg indicates an error occurred
type ErrorMsg struct {
	Err error
}
