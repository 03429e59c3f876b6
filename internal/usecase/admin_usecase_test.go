package usecase_test

import (
	"context"
	"strings"
	"testing"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/usecase"
	"go-interview-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminCtx() context.Context {
	return context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
}

func TestAdminRequiresRole(t *testing.T) {
	uc := usecase.NewAdminUsecase(new(MockUserRepo), new(MockInterviewRepo), nil)

	t.Run("plain user is rejected", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleUser)
		_, err := uc.GetStats(ctx)
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	})

	t.Run("missing role fails safe", func(t *testing.T) {
		_, err := uc.ListSessions(context.Background())
		assert.Error(t, err)
	})
}

func TestAdminStats(t *testing.T) {
	userRepo := new(MockUserRepo)
	interviewRepo := new(MockInterviewRepo)
	ctx := adminCtx()

	userRepo.On("Count", ctx).Return(10, nil)
	userRepo.On("CountByPlan", ctx, domain.PlanPremium).Return(3, nil)
	interviewRepo.On("Count", ctx).Return(42, nil)
	interviewRepo.On("CountByStatus", ctx, domain.SessionStatusCompleted).Return(30, nil)

	uc := usecase.NewAdminUsecase(userRepo, interviewRepo, nil)
	stats, err := uc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalUsers)
	assert.Equal(t, 3, stats.PremiumUsers)
	assert.Equal(t, 42, stats.TotalSessions)
	assert.Equal(t, 30, stats.CompletedSessions)
}

func TestAdminUpdateUserValidatesPlan(t *testing.T) {
	userRepo := new(MockUserRepo)
	ctx := adminCtx()
	userRepo.On("GetByID", ctx, "u1").Return(freeUser("u1"), nil)

	uc := usecase.NewAdminUsecase(userRepo, new(MockInterviewRepo), nil)
	_, err := uc.UpdateUser(ctx, "u1", domain.AdminUpdateUser{Plan: "Platinum"})

	require.Error(t, err)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdminExportActivityCSV(t *testing.T) {
	interviewRepo := new(MockInterviewRepo)
	ctx := adminCtx()
	interviewRepo.On("ListAll", ctx).Return([]domain.InterviewSession{
		{
			ID:        "s1",
			UserID:    "u1",
			JobRole:   "Backend Engineer",
			Mode:      domain.ModeText,
			Status:    domain.SessionStatusCompleted,
			Questions: []string{"Q1", "Q2"},
			Answers:   []string{"a", ""},
		},
	}, nil)

	uc := usecase.NewAdminUsecase(new(MockUserRepo), interviewRepo, nil)
	data, err := uc.ExportActivityCSV(ctx)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "job_role")
	// two questions, one non-empty answer
	assert.Contains(t, lines[1], ",2,1,")
}

func TestUserDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("only self-deletion is allowed", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockInterviewRepo), new(MockMockRepo))
		err := uc.DeleteAccount(ctx, "user1", "user2")
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	})

	t.Run("cascades to sessions and mocks", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		interviewRepo := new(MockInterviewRepo)
		mockRepo := new(MockMockRepo)

		interviewRepo.On("DeleteByUser", ctx, "user1").Return(nil)
		mockRepo.On("DeleteByUser", ctx, "user1").Return(nil)
		userRepo.On("Delete", ctx, "user1").Return(nil)

		uc := usecase.NewUserUsecase(userRepo, interviewRepo, mockRepo)
		require.NoError(t, uc.DeleteAccount(ctx, "user1", "user1"))
		interviewRepo.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("absent user row still succeeds", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		interviewRepo := new(MockInterviewRepo)
		mockRepo := new(MockMockRepo)

		interviewRepo.On("DeleteByUser", ctx, "user1").Return(nil)
		mockRepo.On("DeleteByUser", ctx, "user1").Return(nil)
		userRepo.On("Delete", ctx, "user1").Return(domain.ErrNotFound)

		uc := usecase.NewUserUsecase(userRepo, interviewRepo, mockRepo)
		assert.NoError(t, uc.DeleteAccount(ctx, "user1", "user1"))
	})
}

func TestGetOrProvision(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions a free-tier row on first sight", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "new_user").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, domain.PlanFree, u.Plan)
			assert.Equal(t, domain.RoleUser, u.Role)
		})

		uc := usecase.NewUserUsecase(userRepo, new(MockInterviewRepo), new(MockMockRepo))
		user, err := uc.GetOrProvision(ctx, "new_user", "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, domain.PlanFree, user.Plan)
	})

	t.Run("existing user is returned untouched", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		existing := freeUser("user1")
		existing.Plan = domain.PlanPremium
		userRepo.On("GetByID", ctx, "user1").Return(existing, nil)

		uc := usecase.NewUserUsecase(userRepo, new(MockInterviewRepo), new(MockMockRepo))
		user, err := uc.GetOrProvision(ctx, "user1", existing.Email)
		require.NoError(t, err)
		assert.Equal(t, domain.PlanPremium, user.Plan)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

type MockPayment struct {
	mock.Mock
}

func (m *MockPayment) CreateCheckoutSession(ctx context.Context, userID, email string) (string, error) {
	args := m.Called(ctx, userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockPayment) ListInvoices(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func TestBillingInvoicesWithoutCustomer(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	payment := new(MockPayment)
	userRepo.On("GetByID", ctx, "user1").Return(freeUser("user1"), nil)

	uc := usecase.NewBillingUsecase(userRepo, payment, nil)
	invoices, err := uc.ListInvoices(ctx, "user1")

	require.NoError(t, err)
	assert.Empty(t, invoices)
	payment.AssertNotCalled(t, "ListInvoices", mock.Anything, mock.Anything)
}

func TestBillingPlanFallsBackToRepo(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	userRepo.On("GetByID", ctx, "user1").Return(freeUser("user1"), nil)

	uc := usecase.NewBillingUsecase(userRepo, new(MockPayment), nil)
	plan, err := uc.GetPlan(ctx, "user1")

	require.NoError(t, err)
	assert.Equal(t, domain.PlanFree, plan)
}
