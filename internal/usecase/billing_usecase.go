package usecase

import (
	"context"
	"errors"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const planCacheTTL = 5 * time.Minute

func planCacheKey(userID string) string {
	return "user:plan:" + userID
}

type billingUsecase struct {
	userRepo domain.UserRepository
	payment  domain.PaymentProvider
	cache    *redis.Client
}

// NewBillingUsecase creates a new billing usecase. The cache client is
// optional; a nil client degrades to direct reads.
func NewBillingUsecase(
	userRepo domain.UserRepository,
	payment domain.PaymentProvider,
	cache *redis.Client,
) domain.BillingUsecase {
	return &billingUsecase{
		userRepo: userRepo,
		payment:  payment,
		cache:    cache,
	}
}

// GetPlan returns the user's plan tier, served from cache when warm.
func (uc *billingUsecase) GetPlan(ctx context.Context, userID string) (string, error) {
	if uc.cache != nil {
		if plan, err := uc.cache.Get(ctx, planCacheKey(userID)).Result(); err == nil && plan != "" {
			return plan, nil
		}
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", apperror.Internal(err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, planCacheKey(userID), user.Plan, planCacheTTL).Err(); err != nil {
			logger.Log.Warn("Failed to cache plan", "user_id", userID, "error", err)
		}
	}
	return user.Plan, nil
}

// CreateCheckoutSession returns the provider-hosted checkout URL for a
// subscription upgrade.
func (uc *billingUsecase) CreateCheckoutSession(ctx context.Context, userID, email string) (string, error) {
	if email == "" {
		return "", apperror.Validation("Email is required for checkout")
	}
	return uc.payment.CreateCheckoutSession(ctx, userID, email)
}

// ListInvoices returns the user's billing history. Users who never went
// through checkout have no provider customer and get an empty list.
func (uc *billingUsecase) ListInvoices(ctx context.Context, userID string) ([]domain.Invoice, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if user.PaymentCustomerID == nil || *user.PaymentCustomerID == "" {
		return []domain.Invoice{}, nil
	}
	return uc.payment.ListInvoices(ctx, *user.PaymentCustomerID)
}
