package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
)

// ErrNoVideoURI means the finished operation carried no downloadable
// asset reference
var ErrNoVideoURI = errors.New("video operation finished without a downloadable asset")

type videoRequest struct {
	Instances  []videoInstance  `json:"instances"`
	Parameters *videoParameters `json:"parameters,omitempty"`
}

type videoInstance struct {
	Prompt string `json:"prompt"`
}

type videoParameters struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	Resolution  string `json:"resolution,omitempty"`
}

// operation is the long-running operation resource returned by
// predictLongRunning and its status endpoint
type operation struct {
	Name  string `json:"name"`
	Done  bool   `json:"done"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Response *struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response,omitempty"`
}

// GenerateVideo submits a video job and polls the operation until it
// finishes, then downloads the produced clip. Polling is bounded: when the
// attempt budget runs out the call fails with ErrVideoTimeout rather than
// waiting on a stuck remote job forever.
func (c *Client) GenerateVideo(ctx context.Context, prompt, aspectRatio string) (*models.Asset, error) {
	reqBody := videoRequest{
		Instances: []videoInstance{{Prompt: prompt}},
		Parameters: &videoParameters{
			AspectRatio: aspectRatio,
			Resolution:  "720p",
		},
	}

	resp, err := c.doRequest(ctx, videoModel, "predictLongRunning", "", reqBody)
	if err != nil {
		return nil, err
	}

	var op operation
	decodeErr := json.NewDecoder(resp.Body).Decode(&op)
	_ = resp.Body.Close()
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode video operation: %w", decodeErr)
	}
	if op.Name == "" {
		return nil, ErrEmptyResponse
	}

	c.log.Info().Str("model", videoModel).Str("operation", op.Name).Msg("video job submitted")

	for attempt := 1; attempt <= c.maxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		polled, err := c.getOperation(ctx, op.Name)
		if err != nil {
			return nil, err
		}

		if !polled.Done {
			c.log.Debug().Str("operation", op.Name).Int("attempt", attempt).Msg("video job still running")
			continue
		}

		if polled.Error != nil {
			return nil, fmt.Errorf("video generation failed: %s", polled.Error.Message)
		}

		uri := polled.videoURI()
		if uri == "" {
			return nil, ErrNoVideoURI
		}

		return c.downloadVideo(ctx, uri)
	}

	return nil, ErrVideoTimeout
}

// videoURI returns the download URI of the first generated sample
func (op *operation) videoURI() string {
	if op.Response == nil {
		return ""
	}
	samples := op.Response.GenerateVideoResponse.GeneratedSamples
	if len(samples) == 0 {
		return ""
	}
	return samples[0].Video.URI
}

// getOperation fetches the current state of a long-running operation
func (c *Client) getOperation(ctx context.Context, name string) (op *operation, err error) {
	url := fmt.Sprintf("%s/v1beta/%s?key=%s", c.baseURL, name, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to poll video operation: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var decoded operation
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode operation status: %w", err)
	}

	return &decoded, nil
}

// downloadVideo fetches the finished clip. The returned URI requires the
// API key appended as a query parameter.
func (c *Client) downloadVideo(ctx context.Context, uri string) (asset *models.Asset, err error) {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}

	req, err := http.NewRequestWithContext(ctx, "GET", uri+sep+"key="+c.apiKey, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download video: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read video bytes: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyResponse
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = "video/mp4"
	}

	c.log.Info().Int("bytes", len(data)).Msg("video downloaded")

	return &models.Asset{MIMEType: mime, Data: data}, nil
}
