package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/events"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/email"
	"go-interview-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScheduleMailer sends schedule confirmations. Satisfied by
// email.EmailService; kept narrow so tests can stub it.
type ScheduleMailer interface {
	IsConfigured() bool
	SendScheduleConfirmation(to string, data email.ScheduleEmailData) error
}

type scheduleUsecase struct {
	mockRepo    domain.MockRepository
	interviewUC domain.InterviewUsecase
	mailer      ScheduleMailer
	bus         *events.Bus
	validate    *validator.Validate
	loc         *time.Location
	now         func() time.Time
}

// NewScheduleUsecase creates a new schedule usecase
func NewScheduleUsecase(
	mockRepo domain.MockRepository,
	interviewUC domain.InterviewUsecase,
	mailer ScheduleMailer,
	bus *events.Bus,
	validate *validator.Validate,
) domain.ScheduleUsecase {
	return &scheduleUsecase{
		mockRepo:    mockRepo,
		interviewUC: interviewUC,
		mailer:      mailer,
		bus:         bus,
		validate:    validate,
		loc:         time.Local,
		now:         time.Now,
	}
}

// Schedule validates and persists a future-dated mock. Nothing is written
// when the date or clock components are invalid.
func (uc *scheduleUsecase) Schedule(ctx context.Context, input domain.ScheduleInput) (*domain.ScheduledMock, error) {
	if strings.TrimSpace(input.JobRole) == "" {
		return nil, apperror.Validation("Job role is required")
	}
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	scheduledFor, err := domain.AssembleScheduleTime(input.Date, input.Hour, input.Minute, input.Second, input.Meridiem, uc.loc)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if !scheduledFor.After(uc.now()) {
		return nil, apperror.Validation("Scheduled time must be in the future")
	}

	mock := &domain.ScheduledMock{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		Email:          input.Email,
		ScheduledFor:   scheduledFor,
		Mode:           input.Mode,
		JobRole:        input.JobRole,
		Industry:       input.Industry,
		Experience:     input.Experience,
		ResumeText:     input.ResumeText,
		JobDescription: input.JobDescription,
	}
	if err := uc.mockRepo.Create(ctx, mock); err != nil {
		return nil, apperror.Internal(err)
	}

	uc.bus.Publish(events.Event{Topic: events.TopicMocksChanged, UserID: input.UserID})

	// Confirmation mail is best-effort and never blocks the response
	if uc.mailer != nil && uc.mailer.IsConfigured() {
		go func(m domain.ScheduledMock) {
			err := uc.mailer.SendScheduleConfirmation(m.Email, email.ScheduleEmailData{
				JobRole:      m.JobRole,
				Experience:   m.Experience,
				Mode:         m.Mode,
				ScheduledFor: m.ScheduledFor,
			})
			if err != nil {
				logger.Log.Error("Failed to send schedule confirmation", "mock_id", m.ID, "error", err)
			}
		}(*mock)
	}

	return mock, nil
}

func (uc *scheduleUsecase) List(ctx context.Context, userID string) ([]domain.ScheduledMock, error) {
	mocks, err := uc.mockRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return mocks, nil
}

// Take seeds a fresh interview session from the mock's stored parameters.
// The mock row is left untouched; a user can take the same mock again or
// delete it afterwards.
func (uc *scheduleUsecase) Take(ctx context.Context, requesterID, mockID string) (*domain.InterviewSession, error) {
	mock, err := uc.mockRepo.GetByID(ctx, mockID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Scheduled mock not found")
		}
		return nil, apperror.Internal(err)
	}
	if mock.UserID != requesterID {
		return nil, apperror.Forbidden("You do not own this scheduled mock")
	}

	return uc.interviewUC.CreateAndStart(ctx, domain.CreateInterviewParams{
		UserID:         mock.UserID,
		Email:          mock.Email,
		JobRole:        mock.JobRole,
		Industry:       mock.Industry,
		Experience:     mock.Experience,
		Mode:           mock.Mode,
		ResumeText:     mock.ResumeText,
		JobDescription: mock.JobDescription,
	})
}

// Delete removes a scheduled mock; an already-absent id is a success.
func (uc *scheduleUsecase) Delete(ctx context.Context, requesterID, mockID string) error {
	mock, err := uc.mockRepo.GetByID(ctx, mockID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return apperror.Internal(err)
	}
	if mock.UserID != requesterID {
		return apperror.Forbidden("You do not own this scheduled mock")
	}
	if err := uc.mockRepo.Delete(ctx, mockID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	uc.bus.Publish(events.Event{Topic: events.TopicMocksChanged, UserID: requesterID})
	return nil
}
