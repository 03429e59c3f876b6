package domain

import (
	"context"
	"time"
)

// Plan tiers, owned by the billing system
const (
	PlanFree     = "Free"
	PlanPremium  = "Premium"
	PlanInactive = "Inactive"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// FreeMonthlySessionLimit is the number of interview sessions a Free-tier
// user may create within one calendar month.
const FreeMonthlySessionLimit = 3

// User mirrors an identity-provider account. The ID is the provider's
// subject claim; rows are provisioned lazily on first authenticated request.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Plan              string    `json:"plan"`
	Role              string    `json:"role"`
	PaymentCustomerID *string   `json:"payment_customer_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UserRepository defines data access methods for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, pageSize int) ([]User, int, error)
	Count(ctx context.Context) (int, error)
	CountByPlan(ctx context.Context, plan string) (int, error)
}

// UserUsecase defines business logic for account management
type UserUsecase interface {
	// GetOrProvision returns the stored user, creating a Free-tier row on
	// first sight of a new identity-provider subject.
	GetOrProvision(ctx context.Context, id, email string) (*User, error)
	GetPlan(ctx context.Context, userID string) (string, error)
	// DeleteAccount removes the user together with their sessions and
	// scheduled mocks.
	DeleteAccount(ctx context.Context, requesterID, targetID string) error
}
