package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTransitions(t *testing.T) {
	t.Run("happy path created to completed", func(t *testing.T) {
		s := &InterviewSession{Status: SessionStatusCreated}
		require.NoError(t, s.Start())
		assert.Equal(t, SessionStatusInProgress, s.Status)
		require.NoError(t, s.Complete())
		assert.Equal(t, SessionStatusCompleted, s.Status)
	})

	t.Run("cannot start twice", func(t *testing.T) {
		s := &InterviewSession{Status: SessionStatusCreated}
		require.NoError(t, s.Start())
		assert.Error(t, s.Start())
	})

	t.Run("cannot complete a created session", func(t *testing.T) {
		s := &InterviewSession{Status: SessionStatusCreated}
		assert.Error(t, s.Complete())
	})

	t.Run("cancel allowed from created and in_progress only", func(t *testing.T) {
		s := &InterviewSession{Status: SessionStatusCreated}
		require.NoError(t, s.Cancel())
		assert.Equal(t, SessionStatusCancelled, s.Status)

		s = &InterviewSession{Status: SessionStatusInProgress}
		require.NoError(t, s.Cancel())

		s = &InterviewSession{Status: SessionStatusCompleted}
		assert.Error(t, s.Cancel())

		s = &InterviewSession{Status: SessionStatusCancelled}
		assert.Error(t, s.Cancel())
	})
}

func TestRecordAnswer(t *testing.T) {
	t.Run("materializes the answer slice on first write", func(t *testing.T) {
		s := &InterviewSession{Questions: []string{"Q1", "Q2", "Q3"}}
		s.RecordAnswer(1, "answer two")
		require.Len(t, s.Answers, 3)
		assert.Equal(t, "", s.Answers[0])
		assert.Equal(t, "answer two", s.Answers[1])
		assert.Equal(t, "", s.Answers[2])
	})

	t.Run("preserves earlier answers when materializing", func(t *testing.T) {
		s := &InterviewSession{
			Questions: []string{"Q1", "Q2"},
			Answers:   []string{"first"},
		}
		s.RecordAnswer(1, "second")
		assert.Equal(t, []string{"first", "second"}, s.Answers)
	})

	t.Run("out-of-range index panics", func(t *testing.T) {
		s := &InterviewSession{Questions: []string{"Q1"}}
		assert.Panics(t, func() { s.RecordAnswer(1, "x") })
		assert.Panics(t, func() { s.RecordAnswer(-1, "x") })
	})
}
