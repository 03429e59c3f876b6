package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/events"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	userRepo      domain.UserRepository
	generator     domain.QuestionGenerator
	scorer        domain.FeedbackScorer
	bus           *events.Bus
	validate      *validator.Validate
	scoreTimeout  time.Duration
	now           func() time.Time
}

// NewInterviewUsecase creates a new interview usecase
func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	userRepo domain.UserRepository,
	generator domain.QuestionGenerator,
	scorer domain.FeedbackScorer,
	bus *events.Bus,
	validate *validator.Validate,
	scoreTimeout time.Duration,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		userRepo:      userRepo,
		generator:     generator,
		scorer:        scorer,
		bus:           bus,
		validate:      validate,
		scoreTimeout:  scoreTimeout,
		now:           time.Now,
	}
}

func validExperiences() map[string]bool {
	return map[string]bool{
		domain.ExperienceEntry:  true,
		domain.ExperienceMid:    true,
		domain.ExperienceSenior: true,
	}
}

// CreateAndStart creates a session and starts it in one step. The quota is
// checked against a fresh plan read before the question generator is called,
// so a quota rejection leaves no session row and makes no remote call.
func (uc *interviewUsecase) CreateAndStart(ctx context.Context, params domain.CreateInterviewParams) (*domain.InterviewSession, error) {
	// 1. Validate input
	if strings.TrimSpace(params.JobRole) == "" {
		return nil, apperror.Validation("Job role is required")
	}
	if len(params.ResumeText) > domain.MaxResumeTextLen {
		params.ResumeText = params.ResumeText[:domain.MaxResumeTextLen]
	}
	if err := uc.validate.Struct(params); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	// 2. Re-read the plan; a user who upgraded mid-month must not be throttled
	user, err := uc.userRepo.GetByID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	// 3. Enforce the monthly quota for non-premium users
	if user.Plan != domain.PlanPremium {
		count, err := uc.interviewRepo.CountCreatedSince(ctx, params.UserID, monthStart(uc.now()))
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if count >= domain.FreeMonthlySessionLimit {
			return nil, apperror.QuotaExceeded("Free plan allows 3 interviews per month. Upgrade to Premium for unlimited interviews.")
		}
	}

	// 4. Generate the question set
	questions, err := uc.generator.Generate(ctx, domain.GenerateParams{
		JobRole:        params.JobRole,
		Industry:       params.Industry,
		Experience:     params.Experience,
		Mode:           params.Mode,
		ResumeText:     params.ResumeText,
		JobDescription: params.JobDescription,
	})
	if err != nil {
		return nil, err
	}

	// 5. Persist the started session
	session := &domain.InterviewSession{
		ID:             uuid.NewString(),
		UserID:         params.UserID,
		Email:          params.Email,
		JobRole:        params.JobRole,
		Industry:       params.Industry,
		Experience:     params.Experience,
		Mode:           params.Mode,
		ResumeText:     params.ResumeText,
		JobDescription: params.JobDescription,
		Questions:      questions,
		Answers:        []string{},
		Feedback:       []string{},
		IdealAnswers:   []string{},
		Status:         domain.SessionStatusCreated,
	}
	if err := session.Start(); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := uc.interviewRepo.Create(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}

	return session, nil
}

func (uc *interviewUsecase) Get(ctx context.Context, requesterID, role, id string) (*domain.InterviewSession, error) {
	session, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview session not found")
		}
		return nil, apperror.Internal(err)
	}
	if session.UserID != requesterID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("You do not own this interview session")
	}
	return session, nil
}

func (uc *interviewUsecase) List(ctx context.Context, requesterID, role, targetUserID string) ([]domain.InterviewSession, error) {
	if targetUserID == "" {
		targetUserID = requesterID
	}
	if targetUserID != requesterID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("You may only list your own interview sessions")
	}
	sessions, err := uc.interviewRepo.ListByUser(ctx, targetUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return sessions, nil
}

// Submit records the final answer sequence and completes the session. For
// video interviews the camera-release signal is published on every exit
// path, so a failed submit still frees the device.
func (uc *interviewUsecase) Submit(ctx context.Context, requesterID, id string, answers []string, mode string) error {
	if mode == domain.ModeVideo {
		defer uc.bus.Publish(events.Event{
			Topic:     events.TopicCameraRelease,
			UserID:    requesterID,
			SessionID: id,
		})
	}

	session, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview session not found")
		}
		return apperror.Internal(err)
	}
	if session.UserID != requesterID {
		return apperror.Forbidden("You do not own this interview session")
	}
	if len(answers) > len(session.Questions) {
		return apperror.Validation("More answers than questions")
	}

	// Materialize to the question count; unanswered slots stay empty strings
	materialized := make([]string, len(session.Questions))
	copy(materialized, answers)
	session.Answers = materialized

	if err := session.Complete(); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := uc.interviewRepo.Update(ctx, session); err != nil {
		return apperror.Internal(err)
	}

	uc.bus.Publish(events.Event{
		Topic:     events.TopicSessionCompleted,
		UserID:    requesterID,
		SessionID: id,
	})

	// Scoring happens off the request path; a failure leaves the session
	// completed with empty feedback rather than failing the submit.
	go uc.scoreSession(*session)

	return nil
}

func (uc *interviewUsecase) scoreSession(session domain.InterviewSession) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.scoreTimeout)
	defer cancel()

	result, err := uc.scorer.Score(ctx, session.JobRole, session.Experience, session.Questions, session.Answers)
	if err != nil {
		logger.Log.Error("Feedback scoring failed", "session_id", session.ID, "error", err)
		return
	}
	if err := uc.interviewRepo.UpdateFeedback(ctx, session.ID, result.Feedback, result.IdealAnswers, result.OverallFeedback); err != nil {
		logger.Log.Error("Failed to store feedback", "session_id", session.ID, "error", err)
	}
}

func (uc *interviewUsecase) Cancel(ctx context.Context, requesterID, id string) error {
	session, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview session not found")
		}
		return apperror.Internal(err)
	}
	if session.UserID != requesterID {
		return apperror.Forbidden("You do not own this interview session")
	}
	if err := session.Cancel(); err != nil {
		return apperror.Validation(err.Error())
	}
	if err := uc.interviewRepo.Update(ctx, session); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Delete removes a session. Deleting an id that no longer exists succeeds:
// the caller's goal state is "gone" either way.
func (uc *interviewUsecase) Delete(ctx context.Context, requesterID, role, id string) error {
	session, err := uc.interviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return apperror.Internal(err)
	}
	if session.UserID != requesterID && role != domain.RoleAdmin {
		return apperror.Forbidden("You do not own this interview session")
	}
	if err := uc.interviewRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *interviewUsecase) PastMaterials(ctx context.Context, userID string) (*domain.PastMaterials, error) {
	materials, err := uc.interviewRepo.PastMaterials(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return materials, nil
}

// monthStart returns midnight on the first day of t's calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
