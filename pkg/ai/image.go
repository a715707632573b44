package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ImageClient calls an OpenAI-compatible /v1/images/generations endpoint on
// the media generation provider.
type ImageClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewImageClient(baseURL, apiKey, model string) *ImageClient {
	return &ImageClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		model:   strings.TrimSpace(model),
		httpClient: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

// GenerateImage returns the URL of a generated image.
func (c *ImageClient) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("image provider not configured")
	}
	if size == "" {
		size = "1024x1024"
	}

	body, err := json.Marshal(imageRequest{
		Model:  c.model,
		Prompt: prompt,
		N:      1,
		Size:   size,
	})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/images/generations"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return "", fmt.Errorf("image api error: %s", errResp.Error.Message)
		}
		return "", fmt.Errorf("image api error: %s", resp.Status)
	}

	var imgResp imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&imgResp); err != nil {
		return "", fmt.Errorf("image decode: %w", err)
	}
	if len(imgResp.Data) == 0 || imgResp.Data[0].URL == "" {
		return "", fmt.Errorf("empty response from image api")
	}
	return imgResp.Data[0].URL, nil
}

type imageRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}
