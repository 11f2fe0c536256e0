package gemini

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// expandDirective is the instruction wrapped around the user's sentence.
// The vocabulary constraints keep the generated directive past the image
// model's safety filters.
const expandDirective = `Based on the following sentence, create a highly detailed visual directive for an AI image generator.
Visual style: %q.
Safety Guidelines (CRITICAL):
- Strictly avoid any terms related to: biological trauma, graphic violence, medical procedures, excessive gore, or explicit anatomical details.
- Use artistic metaphors (e.g. "surreal distortions", "ethereal melting", "obsessive patterns") instead of literal scary or graphic words.
- Focus on: lighting, atmospheric dread, and cinematic composition.
- The directive must be evocative but "PG-13" in its vocabulary to pass safety filters.
Output a single descriptive paragraph. No intro.
Sentence: %q`

// ExpandStream is a single-pass stream of text fragments from the model.
// Fragments concatenate to the full expanded prompt; individual fragments
// may be empty. Recv returns io.EOF when the stream ends. Close releases
// the underlying connection and makes the stream unusable.
type ExpandStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

// ExpandPrompt asks the text model to expand a sentence into a visual
// directive, streamed as server-sent events
func (c *Client) ExpandPrompt(ctx context.Context, sentence, style string) (*ExpandStream, error) {
	prompt := fmt.Sprintf(expandDirective, style, sentence)

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	resp, err := c.doRequest(ctx, textModel, "streamGenerateContent", "&alt=sse", reqBody)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Str("model", textModel).Str("style", style).Msg("expansion stream opened")

	scanner := bufio.NewScanner(resp.Body)
	// SSE events carry whole JSON chunks on one line
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &ExpandStream{
		body:    resp.Body,
		scanner: scanner,
	}, nil
}

// Recv returns the next text fragment, or io.EOF when the stream is done
func (s *ExpandStream) Recv() (string, error) {
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var chunk generateResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return "", fmt.Errorf("failed to decode stream chunk: %w", err)
		}

		if len(chunk.Candidates) == 0 {
			continue
		}

		cand := chunk.Candidates[0]
		if cand.FinishReason == "SAFETY" {
			return "", &SafetyError{Stage: "prompt expansion"}
		}

		var b strings.Builder
		if cand.Content != nil {
			for _, p := range cand.Content.Parts {
				b.WriteString(p.Text)
			}
		}
		return b.String(), nil
	}

	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("expansion stream failed: %w", err)
	}
	return "", io.EOF
}

// Close releases the stream's connection
func (s *ExpandStream) Close() {
	_ = s.body.Close()
}
