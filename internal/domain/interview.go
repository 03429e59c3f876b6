package domain

import (
	"context"
	"fmt"
	"time"
)

// Interview session status values. Transitions are monotonic:
// created → in_progress → completed, with cancelled reachable from
// created or in_progress only. Nothing leaves completed or cancelled
// except deletion of the row itself.
const (
	SessionStatusCreated    = "created"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
	SessionStatusCancelled  = "cancelled"
)

// Interview modes
const (
	ModeText  = "text"
	ModeAudio = "audio"
	ModeVideo = "video"
)

// Experience levels
const (
	ExperienceEntry  = "Entry"
	ExperienceMid    = "Mid"
	ExperienceSenior = "Senior"
)

// MaxResumeTextLen caps resume text; longer uploads are truncated by the
// client-side extractor, and the server enforces the same bound.
const MaxResumeTextLen = 2000

// InterviewSession is one interview attempt, from creation through optional
// completion. Answers, Feedback and IdealAnswers are either empty or
// index-aligned with Questions.
type InterviewSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Email           string    `json:"email,omitempty"`
	JobRole         string    `json:"job_role"`
	Industry        string    `json:"industry,omitempty"`
	Experience      string    `json:"experience"`
	Mode            string    `json:"mode"`
	ResumeText      string    `json:"resume_text,omitempty"`
	JobDescription  string    `json:"job_description,omitempty"`
	Questions       []string  `json:"questions"`
	Answers         []string  `json:"answers"`
	Feedback        []string  `json:"feedback"`
	IdealAnswers    []string  `json:"ideal_answers"`
	OverallFeedback string    `json:"overall_feedback,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Start moves the session from created to in_progress.
func (s *InterviewSession) Start() error {
	if s.Status != SessionStatusCreated {
		return fmt.Errorf("cannot start session in status %q", s.Status)
	}
	s.Status = SessionStatusInProgress
	return nil
}

// Complete moves the session from in_progress to completed.
func (s *InterviewSession) Complete() error {
	if s.Status != SessionStatusInProgress {
		return fmt.Errorf("cannot complete session in status %q", s.Status)
	}
	s.Status = SessionStatusCompleted
	return nil
}

// Cancel moves the session to cancelled from created or in_progress.
func (s *InterviewSession) Cancel() error {
	if s.Status != SessionStatusCreated && s.Status != SessionStatusInProgress {
		return fmt.Errorf("cannot cancel session in status %q", s.Status)
	}
	s.Status = SessionStatusCancelled
	return nil
}

// RecordAnswer stores an answer for the question at index i, materializing
// the answer slice to the question count on first use. An out-of-range
// index is a programming error, not a recoverable condition, and panics.
func (s *InterviewSession) RecordAnswer(i int, text string) {
	if i < 0 || i >= len(s.Questions) {
		panic(fmt.Sprintf("answer index %d out of range for %d questions", i, len(s.Questions)))
	}
	if len(s.Answers) != len(s.Questions) {
		answers := make([]string, len(s.Questions))
		copy(answers, s.Answers)
		s.Answers = answers
	}
	s.Answers[i] = text
}

// CreateInterviewParams carries the inputs of session creation.
type CreateInterviewParams struct {
	UserID         string `validate:"required"`
	Email          string
	JobRole        string `validate:"required"`
	Industry       string
	Experience     string `validate:"required,oneof=Entry Mid Senior"`
	Mode           string `validate:"required,oneof=text audio video"`
	ResumeText     string `validate:"max=2000"`
	JobDescription string
}

// PastMaterials is the set of previously used resume texts and job
// descriptions for pre-filling the creation form.
type PastMaterials struct {
	Resumes  []string `json:"resumes"`
	JobDescs []string `json:"jobDescs"`
}

// InterviewRepository defines data access methods for interview sessions
type InterviewRepository interface {
	Create(ctx context.Context, session *InterviewSession) error
	GetByID(ctx context.Context, id string) (*InterviewSession, error)
	Update(ctx context.Context, session *InterviewSession) error
	// UpdateFeedback stores scoring results without touching other columns.
	UpdateFeedback(ctx context.Context, id string, feedback, idealAnswers []string, overall string) error
	ListByUser(ctx context.Context, userID string) ([]InterviewSession, error)
	ListAll(ctx context.Context) ([]InterviewSession, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	// CountCreatedSince counts sessions the user created at or after the
	// given instant; the quota check passes the start of the calendar month.
	CountCreatedSince(ctx context.Context, userID string, since time.Time) (int, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	PastMaterials(ctx context.Context, userID string) (*PastMaterials, error)
}

// InterviewUsecase sequences the session lifecycle: create, start, submit,
// plus reads and idempotent deletion.
type InterviewUsecase interface {
	// CreateAndStart creates a session, then starts it against the question
	// generator. Free-tier users are checked against the monthly quota
	// before the session row is written.
	CreateAndStart(ctx context.Context, params CreateInterviewParams) (*InterviewSession, error)
	Get(ctx context.Context, requesterID, role, id string) (*InterviewSession, error)
	List(ctx context.Context, requesterID, role, targetUserID string) ([]InterviewSession, error)
	// Submit persists the fully materialized answer sequence and completes
	// the session. For video mode the camera-release signal is published
	// regardless of outcome.
	Submit(ctx context.Context, requesterID, id string, answers []string, mode string) error
	Cancel(ctx context.Context, requesterID, id string) error
	Delete(ctx context.Context, requesterID, role, id string) error
	PastMaterials(ctx context.Context, userID string) (*PastMaterials, error)
}
