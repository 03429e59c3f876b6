package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"
)

// GeneratorClient calls the remote question-generation service over HTTP.
// The generation model itself is opaque to this backend.
type GeneratorClient struct {
	url    string
	client *http.Client
}

func NewGeneratorClient(url string, timeout time.Duration) *GeneratorClient {
	return &GeneratorClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateResponse struct {
	Questions []string `json:"questions"`
}

// Generate requests a tailored question list for the given interview
// parameters. Failures are wrapped as remote errors and never retried.
func (g *GeneratorClient) Generate(ctx context.Context, params domain.GenerateParams) ([]string, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("marshal generate request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("build generate request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperror.Remote("Question generator unavailable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Remote("Question generator response unreadable", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("Question generator returned non-200", "status", resp.StatusCode, "body", string(body))
		return nil, apperror.Remote("Question generator failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apperror.Remote("Question generator returned malformed JSON", err)
	}
	if len(out.Questions) == 0 {
		return nil, apperror.Remote("Question generator returned no questions", nil)
	}

	return out.Questions, nil
}
