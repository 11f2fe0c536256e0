package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
)

// GenerateImage produces a still image from an expanded prompt
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio, style string) (*models.Asset, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{
			{Text: fmt.Sprintf("%s. %s", style, prompt)},
		}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: aspectRatio},
		},
	}

	resp, err := c.generate(ctx, imageModel, reqBody)
	if err != nil {
		return nil, err
	}

	asset, err := assetFromResponse(resp, "visual asset")
	if err != nil {
		return nil, err
	}

	c.log.Info().Str("model", imageModel).Str("aspect_ratio", aspectRatio).
		Int("bytes", len(asset.Data)).Msg("image generated")

	return asset, nil
}

// EditImage applies a nudge instruction to an existing image and returns
// the replacement asset. The input asset is not modified.
func (c *Client) EditImage(ctx context.Context, image *models.Asset, instruction, style string) (*models.Asset, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{
				MIMEType: image.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(image.Data),
			}},
			{Text: fmt.Sprintf("%s. %s", style, instruction)},
		}}},
	}

	resp, err := c.generate(ctx, imageModel, reqBody)
	if err != nil {
		return nil, err
	}

	asset, err := assetFromResponse(resp, "edit")
	if err != nil {
		return nil, err
	}

	c.log.Info().Str("model", imageModel).Int("bytes", len(asset.Data)).Msg("image edited")

	return asset, nil
}

// assetFromResponse extracts inline image bytes from a generateContent
// response, distinguishing safety rejections and text-only refusals
func assetFromResponse(resp *generateResponse, stage string) (*models.Asset, error) {
	if len(resp.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == "SAFETY" || cand.FinishReason == "IMAGE_SAFETY" {
		return nil, &SafetyError{Stage: stage}
	}

	if cand.Content == nil {
		return nil, ErrEmptyResponse
	}

	for _, p := range cand.Content.Parts {
		if p.InlineData == nil {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode asset bytes: %w", err)
		}
		mime := p.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return &models.Asset{MIMEType: mime, Data: data}, nil
	}

	// No image part: the model answered with text, usually a refusal
	for _, p := range cand.Content.Parts {
		if p.Text != "" {
			return nil, fmt.Errorf("asset creation failed: %s", truncate(p.Text, 80))
		}
	}

	return nil, ErrEmptyResponse
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
