package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Model identifiers for the three generation tasks
const (
	textModel  = "gemini-3-flash-preview"
	imageModel = "gemini-2.5-flash-image"
	videoModel = "veo-3.0-fast-generate-001"
)

// Client issues calls against the Gemini API. It holds no per-call state;
// every operation validates the credential and performs one request.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     zerolog.Logger

	// Video operation polling budget
	pollInterval    time.Duration
	maxPollAttempts int
}

// NewClient creates a new API client
func NewClient(apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 3 * time.Minute,
		},
		log:             logger.With().Str("component", "gemini").Logger(),
		pollInterval:    5 * time.Second,
		maxPollAttempts: 60,
	}
}

// content/part mirror the generateContent request and response body
type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ImageConfig *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      *content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

// doRequest performs an authenticated POST against a model endpoint.
// verb is the RPC suffix, e.g. "generateContent".
func (c *Client) doRequest(ctx context.Context, model, verb, query string, body any) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:%s?key=%s%s", c.baseURL, model, verb, c.apiKey, query)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", model, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer func() {
			_ = resp.Body.Close()
		}()
		return nil, decodeAPIError(resp)
	}

	return resp, nil
}

// generate performs a unary generateContent call and decodes the response
func (c *Client) generate(ctx context.Context, model string, reqBody generateRequest) (resp *generateResponse, err error) {
	httpResp, err := c.doRequest(ctx, model, "generateContent", "", reqBody)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := httpResp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	var decoded generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", model, err)
	}

	return &decoded, nil
}

// decodeAPIError turns a non-200 response into an *APIError
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		apiErr.Message = envelope.Error.Message
		apiErr.Status = envelope.Error.Status
	}

	return apiErr
}
