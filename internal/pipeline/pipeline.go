// Package pipeline drives scenes through prompt expansion, image
// synthesis, and the optional refinement and video stages. It is
// UI-agnostic: state changes are pushed through an UpdateFunc callback.
package pipeline

import (
	"context"
	"errors"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
)

var (
	// ErrMissingSentences is returned when either input is blank.
	// Validation happens before any network activity.
	ErrMissingSentences = errors.New("please provide both sentences to begin the workflow")

	// ErrEmptyExpansion is returned when the expansion stream finished
	// without producing any text
	ErrEmptyExpansion = errors.New("prompt expansion returned no text")
)

// TextStream is a single-pass, in-order producer of prompt fragments.
// Recv returns io.EOF when the stream is exhausted; fragments may be
// empty and do not align with word boundaries.
type TextStream interface {
	Recv() (string, error)
	Close()
}

// Generator is the boundary to the generative API. Implementations are
// stateless; a failed call propagates immediately, nothing is retried.
type Generator interface {
	ExpandPrompt(ctx context.Context, sentence, style string) (TextStream, error)
	GenerateImage(ctx context.Context, prompt, aspectRatio, style string) (*models.Asset, error)
	EditImage(ctx context.Context, image *models.Asset, instruction, style string) (*models.Asset, error)
	GenerateVideo(ctx context.Context, prompt, aspectRatio string) (*models.Asset, error)
}

// UpdateFunc receives a snapshot of all scenes after every state
// mutation, including once per streamed fragment
type UpdateFunc func(scenes []*models.Scene)

// RunOptions carries the user's form selections
type RunOptions struct {
	Style       string
	AspectRatio string
}
