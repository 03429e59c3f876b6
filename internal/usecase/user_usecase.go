package usecase

import (
	"context"
	"errors"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"
)

type userUsecase struct {
	userRepo      domain.UserRepository
	interviewRepo domain.InterviewRepository
	mockRepo      domain.MockRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo domain.UserRepository,
	interviewRepo domain.InterviewRepository,
	mockRepo domain.MockRepository,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:      userRepo,
		interviewRepo: interviewRepo,
		mockRepo:      mockRepo,
	}
}

// GetOrProvision returns the stored user, creating a Free-tier row the
// first time an identity-provider subject is seen.
func (uc *userUsecase) GetOrProvision(ctx context.Context, id, emailAddr string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err == nil {
		if emailAddr != "" && user.Email != emailAddr {
			user.Email = emailAddr
			if err := uc.userRepo.Update(ctx, user); err != nil {
				logger.Log.Error("Failed to refresh user email", "user_id", id, "error", err)
			}
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	user = &domain.User{
		ID:    id,
		Email: emailAddr,
		Plan:  domain.PlanFree,
		Role:  domain.RoleUser,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	logger.Log.Info("Provisioned new user", "user_id", id)
	return user, nil
}

func (uc *userUsecase) GetPlan(ctx context.Context, userID string) (string, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", apperror.Internal(err)
	}
	return user.Plan, nil
}

// DeleteAccount removes the user and everything they own. Only the account
// holder may delete themselves; deleting an already-absent account succeeds.
func (uc *userUsecase) DeleteAccount(ctx context.Context, requesterID, targetID string) error {
	if requesterID != targetID {
		return apperror.Forbidden("You may only delete your own account")
	}

	if err := uc.interviewRepo.DeleteByUser(ctx, targetID); err != nil {
		return apperror.Internal(err)
	}
	if err := uc.mockRepo.DeleteByUser(ctx, targetID); err != nil {
		return apperror.Internal(err)
	}
	if err := uc.userRepo.Delete(ctx, targetID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	logger.Log.Info("Deleted account", "user_id", targetID)
	return nil
}
