package tui

import (
	"context"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/gemini"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/pipeline"
)

// generator adapts the Gemini client to the pipeline's Generator
// interface
type generator struct {
	client *gemini.Client
}

func newGenerator(client *gemini.Client) generator {
	return generator{client: client}
}

func (g generator) ExpandPrompt(ctx context.Context, sentence, style string) (pipeline.TextStream, error) {
	stream, err := g.client.ExpandPrompt(ctx, sentence, style)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (g generator) GenerateImage(ctx context.Context, prompt, aspectRatio, style string) (*models.Asset, error) {
	return g.client.GenerateImage(ctx, prompt, aspectRatio, style)
}

func (g generator) EditImage(ctx context.Context, image *models.Asset, instruction, style string) (*models.Asset, error) {
	return g.client.EditImage(ctx, image, instruction, style)
}

func (g generator) GenerateVideo(ctx context.Context, prompt, aspectRatio string) (*models.Asset, error) {
	return g.client.GenerateVideo(ctx, prompt, aspectRatio)
}
