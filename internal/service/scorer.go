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

// ScorerClient calls the remote feedback-scoring service over HTTP.
type ScorerClient struct {
	url    string
	client *http.Client
}

func NewScorerClient(url string, timeout time.Duration) *ScorerClient {
	return &ScorerClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type scoreRequest struct {
	JobRole    string   `json:"job_role"`
	Experience string   `json:"experience"`
	Questions  []string `json:"questions"`
	Answers    []string `json:"answers"`
}

// Score submits the full question/answer sequence for feedback. The answer
// slice is index-aligned with questions; unanswered slots arrive as empty
// strings so the scorer can comment on skipped questions.
func (s *ScorerClient) Score(ctx context.Context, jobRole, experience string, questions, answers []string) (*domain.ScoreResult, error) {
	payload, err := json.Marshal(scoreRequest{
		JobRole:    jobRole,
		Experience: experience,
		Questions:  questions,
		Answers:    answers,
	})
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("marshal score request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("build score request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperror.Remote("Feedback scorer unavailable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Remote("Feedback scorer response unreadable", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("Feedback scorer returned non-200", "status", resp.StatusCode, "body", string(body))
		return nil, apperror.Remote("Feedback scorer failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	var result domain.ScoreResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperror.Remote("Feedback scorer returned malformed JSON", err)
	}

	return &result, nil
}
