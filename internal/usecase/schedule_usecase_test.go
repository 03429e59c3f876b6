package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/events"
	"go-interview-backend/internal/usecase"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/email"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMockRepo struct {
	mock.Mock
}

func (m *MockMockRepo) Create(ctx context.Context, mockEntry *domain.ScheduledMock) error {
	return m.Called(ctx, mockEntry).Error(0)
}
func (m *MockMockRepo) GetByID(ctx context.Context, id string) (*domain.ScheduledMock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduledMock), args.Error(1)
}
func (m *MockMockRepo) ListByUser(ctx context.Context, userID string) ([]domain.ScheduledMock, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledMock), args.Error(1)
}
func (m *MockMockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockMockRepo) DeleteByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockMockRepo) ListDueForReminder(ctx context.Context, now time.Time, lead time.Duration) ([]domain.ScheduledMock, error) {
	args := m.Called(ctx, now, lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledMock), args.Error(1)
}
func (m *MockMockRepo) MarkReminderSent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewUC struct {
	mock.Mock
}

func (m *MockInterviewUC) CreateAndStart(ctx context.Context, params domain.CreateInterviewParams) (*domain.InterviewSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSession), args.Error(1)
}
func (m *MockInterviewUC) Get(ctx context.Context, requesterID, role, id string) (*domain.InterviewSession, error) {
	args := m.Called(ctx, requesterID, role, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSession), args.Error(1)
}
func (m *MockInterviewUC) List(ctx context.Context, requesterID, role, targetUserID string) ([]domain.InterviewSession, error) {
	args := m.Called(ctx, requesterID, role, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewSession), args.Error(1)
}
func (m *MockInterviewUC) Submit(ctx context.Context, requesterID, id string, answers []string, mode string) error {
	return m.Called(ctx, requesterID, id, answers, mode).Error(0)
}
func (m *MockInterviewUC) Cancel(ctx context.Context, requesterID, id string) error {
	return m.Called(ctx, requesterID, id).Error(0)
}
func (m *MockInterviewUC) Delete(ctx context.Context, requesterID, role, id string) error {
	return m.Called(ctx, requesterID, role, id).Error(0)
}
func (m *MockInterviewUC) PastMaterials(ctx context.Context, userID string) (*domain.PastMaterials, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PastMaterials), args.Error(1)
}

type stubMailer struct{}

func (stubMailer) IsConfigured() bool                                        { return false }
func (stubMailer) SendScheduleConfirmation(string, email.ScheduleEmailData) error { return nil }

func newScheduleUC(mockRepo *MockMockRepo, interviewUC *MockInterviewUC) domain.ScheduleUsecase {
	return usecase.NewScheduleUsecase(mockRepo, interviewUC, stubMailer{}, events.NewBus(), validator.New())
}

func validScheduleInput(userID string) domain.ScheduleInput {
	return domain.ScheduleInput{
		UserID:     userID,
		Email:      userID + "@example.com",
		Date:       "2999-06-15",
		Hour:       9,
		Minute:     30,
		Meridiem:   "AM",
		Mode:       domain.ModeVideo,
		JobRole:    "Backend Engineer",
		Experience: domain.ExperienceSenior,
	}
}

func TestScheduleAssemblesTime(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMockRepo)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.ScheduledMock")).Return(nil)

	uc := newScheduleUC(mockRepo, new(MockInterviewUC))

	t.Run("9:30 AM stays 09:30", func(t *testing.T) {
		scheduled, err := uc.Schedule(ctx, validScheduleInput("user1"))
		require.NoError(t, err)
		assert.Equal(t, 9, scheduled.ScheduledFor.Hour())
		assert.Equal(t, 30, scheduled.ScheduledFor.Minute())
	})

	t.Run("12 AM maps to midnight", func(t *testing.T) {
		input := validScheduleInput("user1")
		input.Hour = 12
		input.Minute = 0
		input.Meridiem = "AM"
		scheduled, err := uc.Schedule(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 0, scheduled.ScheduledFor.Hour())
	})

	t.Run("12 PM maps to noon", func(t *testing.T) {
		input := validScheduleInput("user1")
		input.Hour = 12
		input.Meridiem = "PM"
		scheduled, err := uc.Schedule(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 12, scheduled.ScheduledFor.Hour())
	})
}

func TestScheduleInvalidInputPersistsNothing(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.ScheduleInput)
	}{
		{"bad meridiem", func(in *domain.ScheduleInput) { in.Meridiem = "XM" }},
		{"hour out of range", func(in *domain.ScheduleInput) { in.Hour = 13 }},
		{"nonexistent date", func(in *domain.ScheduleInput) { in.Date = "2999-02-30" }},
		{"past date", func(in *domain.ScheduleInput) { in.Date = "2001-01-01" }},
		{"missing job role", func(in *domain.ScheduleInput) { in.JobRole = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(MockMockRepo)
			uc := newScheduleUC(mockRepo, new(MockInterviewUC))

			input := validScheduleInput("user1")
			tc.mutate(&input)

			_, err := uc.Schedule(ctx, input)
			require.Error(t, err)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestTakeMockPreservesIt(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMockRepo)
	interviewUC := new(MockInterviewUC)

	stored := &domain.ScheduledMock{
		ID:             "m1",
		UserID:         "user1",
		Email:          "user1@example.com",
		ScheduledFor:   time.Now().Add(time.Hour),
		Mode:           domain.ModeAudio,
		JobRole:        "Data Engineer",
		Industry:       "Finance",
		Experience:     domain.ExperienceMid,
		ResumeText:     "resume",
		JobDescription: "jd",
	}
	mockRepo.On("GetByID", ctx, "m1").Return(stored, nil)
	interviewUC.On("CreateAndStart", ctx, domain.CreateInterviewParams{
		UserID:         "user1",
		Email:          "user1@example.com",
		JobRole:        "Data Engineer",
		Industry:       "Finance",
		Experience:     domain.ExperienceMid,
		Mode:           domain.ModeAudio,
		ResumeText:     "resume",
		JobDescription: "jd",
	}).Return(&domain.InterviewSession{ID: "s1", Status: domain.SessionStatusInProgress}, nil)

	uc := newScheduleUC(mockRepo, interviewUC)
	session, err := uc.Take(ctx, "user1", "m1")

	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)
	// The mock must survive being taken
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	interviewUC.AssertExpectations(t)
}

func TestTakeOwnership(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMockRepo)
	mockRepo.On("GetByID", ctx, "m1").Return(&domain.ScheduledMock{ID: "m1", UserID: "owner"}, nil)

	uc := newScheduleUC(mockRepo, new(MockInterviewUC))
	_, err := uc.Take(ctx, "stranger", "m1")

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestDeleteMock(t *testing.T) {
	ctx := context.Background()

	t.Run("absent mock deletes successfully", func(t *testing.T) {
		mockRepo := new(MockMockRepo)
		mockRepo.On("GetByID", ctx, "gone").Return(nil, domain.ErrNotFound)

		uc := newScheduleUC(mockRepo, new(MockInterviewUC))
		assert.NoError(t, uc.Delete(ctx, "user1", "gone"))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		mockRepo := new(MockMockRepo)
		mockRepo.On("GetByID", ctx, "m1").Return(&domain.ScheduledMock{ID: "m1", UserID: "owner"}, nil)

		uc := newScheduleUC(mockRepo, new(MockInterviewUC))
		assert.Error(t, uc.Delete(ctx, "stranger", "m1"))
	})

	t.Run("owner delete removes the row", func(t *testing.T) {
		mockRepo := new(MockMockRepo)
		mockRepo.On("GetByID", ctx, "m1").Return(&domain.ScheduledMock{ID: "m1", UserID: "user1"}, nil)
		mockRepo.On("Delete", ctx, "m1").Return(nil)

		uc := newScheduleUC(mockRepo, new(MockInterviewUC))
		assert.NoError(t, uc.Delete(ctx, "user1", "m1"))
		mockRepo.AssertExpectations(t)
	})
}
