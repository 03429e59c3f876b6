package domain

import "context"

// External collaborators. Question generation, scoring and payment
// settlement are server-owned elsewhere; this service only calls them
// through these fixed interfaces and never retries a failed call.

// GenerateParams describes the interview a question set is requested for.
type GenerateParams struct {
	JobRole        string `json:"job_role"`
	Industry       string `json:"industry,omitempty"`
	Experience     string `json:"experience"`
	Mode           string `json:"mode"`
	ResumeText     string `json:"resume_text,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

// QuestionGenerator produces the ordered question list for a session,
// optionally tailored by resume text.
type QuestionGenerator interface {
	Generate(ctx context.Context, params GenerateParams) ([]string, error)
}

// ScoreResult carries per-question feedback index-aligned with the
// submitted questions, plus the overall feedback paragraph.
type ScoreResult struct {
	Feedback        []string `json:"feedback"`
	IdealAnswers    []string `json:"ideal_answers"`
	OverallFeedback string   `json:"overall_feedback"`
}

// FeedbackScorer scores a completed interview.
type FeedbackScorer interface {
	Score(ctx context.Context, jobRole, experience string, questions, answers []string) (*ScoreResult, error)
}

// PaymentProvider fronts the external payment processor.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, userID, email string) (string, error)
	ListInvoices(ctx context.Context, customerID string) ([]Invoice, error)
}
