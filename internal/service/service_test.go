package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorClient(t *testing.T) {
	t.Run("returns the question list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var params domain.GenerateParams
			require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
			assert.Equal(t, "Backend Engineer", params.JobRole)
			json.NewEncoder(w).Encode(map[string][]string{"questions": {"Q1", "Q2"}})
		}))
		defer srv.Close()

		client := NewGeneratorClient(srv.URL, 5*time.Second)
		questions, err := client.Generate(context.Background(), domain.GenerateParams{
			JobRole:    "Backend Engineer",
			Experience: domain.ExperienceMid,
			Mode:       domain.ModeText,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Q1", "Q2"}, questions)
	})

	t.Run("wraps server failure as remote error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewGeneratorClient(srv.URL, 5*time.Second)
		_, err := client.Generate(context.Background(), domain.GenerateParams{JobRole: "x"})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeRemote, appErr.Code)
	})

	t.Run("empty question list is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string][]string{"questions": {}})
		}))
		defer srv.Close()

		client := NewGeneratorClient(srv.URL, 5*time.Second)
		_, err := client.Generate(context.Background(), domain.GenerateParams{JobRole: "x"})
		assert.Error(t, err)
	})
}

func TestScorerClient(t *testing.T) {
	t.Run("submits the aligned answer sequence", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Questions []string `json:"questions"`
				Answers   []string `json:"answers"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Len(t, req.Answers, len(req.Questions))
			json.NewEncoder(w).Encode(domain.ScoreResult{
				Feedback:        []string{"f1", "f2"},
				IdealAnswers:    []string{"i1", "i2"},
				OverallFeedback: "ok",
			})
		}))
		defer srv.Close()

		client := NewScorerClient(srv.URL, 5*time.Second)
		result, err := client.Score(context.Background(), "Backend Engineer", domain.ExperienceMid,
			[]string{"Q1", "Q2"}, []string{"a", ""})
		require.NoError(t, err)
		assert.Equal(t, "ok", result.OverallFeedback)
		assert.Equal(t, []string{"f1", "f2"}, result.Feedback)
	})

	t.Run("unreachable scorer is a remote error", func(t *testing.T) {
		client := NewScorerClient("http://127.0.0.1:0", time.Second)
		_, err := client.Score(context.Background(), "r", "Mid", nil, nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeRemote, appErr.Code)
	})
}
