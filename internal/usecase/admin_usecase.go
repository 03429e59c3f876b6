package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type adminUsecase struct {
	userRepo      domain.UserRepository
	interviewRepo domain.InterviewRepository
	cache         *redis.Client
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo domain.UserRepository,
	interviewRepo domain.InterviewRepository,
	cache *redis.Client,
) domain.AdminUsecase {
	return &adminUsecase{
		userRepo:      userRepo,
		interviewRepo: interviewRepo,
		cache:         cache,
	}
}

// requireAdmin rejects callers whose authenticated role is not admin. The
// role is stamped onto the context by the auth middleware.
func requireAdmin(ctx context.Context) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}

func (uc *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	totalUsers, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	premiumUsers, err := uc.userRepo.CountByPlan(ctx, domain.PlanPremium)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	totalSessions, err := uc.interviewRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	completedSessions, err := uc.interviewRepo.CountByStatus(ctx, domain.SessionStatusCompleted)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AdminStats{
		TotalUsers:        totalUsers,
		PremiumUsers:      premiumUsers,
		TotalSessions:     totalSessions,
		CompletedSessions: completedSessions,
	}, nil
}

func (uc *adminUsecase) ListUsers(ctx context.Context, page, pageSize int) (*domain.PaginatedResult[domain.User], error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := uc.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &domain.PaginatedResult[domain.User]{
		Data:       users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (uc *adminUsecase) UpdateUser(ctx context.Context, userID string, update domain.AdminUpdateUser) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Plan != "" {
		switch update.Plan {
		case domain.PlanFree, domain.PlanPremium, domain.PlanInactive:
			user.Plan = update.Plan
		default:
			return nil, apperror.Validation("Plan must be Free, Premium or Inactive")
		}
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	// Drop the cached plan so the new tier takes effect immediately
	if uc.cache != nil {
		if err := uc.cache.Del(ctx, planCacheKey(userID)).Err(); err != nil {
			logger.Log.Warn("Failed to invalidate plan cache", "user_id", userID, "error", err)
		}
	}

	return user, nil
}

func (uc *adminUsecase) ListSessions(ctx context.Context) ([]domain.InterviewSession, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	sessions, err := uc.interviewRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return sessions, nil
}

func (uc *adminUsecase) UpdateSession(ctx context.Context, sessionID string, update domain.AdminUpdateSession) (*domain.InterviewSession, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	session, err := uc.interviewRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview session not found")
		}
		return nil, apperror.Internal(err)
	}

	if update.JobRole != "" {
		session.JobRole = update.JobRole
	}
	if update.Experience != "" {
		if !validExperiences()[update.Experience] {
			return nil, apperror.Validation("Experience must be Entry, Mid or Senior")
		}
		session.Experience = update.Experience
	}
	if update.Status != "" {
		switch update.Status {
		case domain.SessionStatusCreated, domain.SessionStatusInProgress,
			domain.SessionStatusCompleted, domain.SessionStatusCancelled:
			session.Status = update.Status
		default:
			return nil, apperror.Validation("Invalid session status")
		}
	}

	if err := uc.interviewRepo.Update(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}
	return session, nil
}

func (uc *adminUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if err := uc.interviewRepo.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	return nil
}

// ExportActivityCSV renders every session as one CSV row for offline
// analysis. Question and answer columns carry counts, not full text.
func (uc *adminUsecase) ExportActivityCSV(ctx context.Context) ([]byte, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	sessions, err := uc.interviewRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"id", "user_id", "email", "job_role", "experience", "mode", "status", "questions", "answered", "created_at", "updated_at"}
	if err := w.Write(header); err != nil {
		return nil, apperror.Internal(err)
	}

	for _, s := range sessions {
		answered := 0
		for _, a := range s.Answers {
			if strings.TrimSpace(a) != "" {
				answered++
			}
		}
		row := []string{
			s.ID,
			s.UserID,
			s.Email,
			s.JobRole,
			s.Experience,
			s.Mode,
			s.Status,
			strconv.Itoa(len(s.Questions)),
			strconv.Itoa(answered),
			s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(row); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}
