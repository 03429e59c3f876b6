package domain

import "context"

// AdminStats holds the dashboard counters.
type AdminStats struct {
	TotalUsers        int `json:"total_users"`
	PremiumUsers      int `json:"premium_users"`
	TotalSessions     int `json:"total_sessions"`
	CompletedSessions int `json:"completed_sessions"`
}

// PaginatedResult wraps list responses with paging metadata.
type PaginatedResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// AdminUpdateUser is the mutable subset of a user an admin may edit.
type AdminUpdateUser struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

// AdminUpdateSession is the mutable subset of a session an admin may edit.
type AdminUpdateSession struct {
	JobRole    string `json:"job_role"`
	Experience string `json:"experience"`
	Status     string `json:"status"`
}

// AdminUsecase defines the admin panel operations. Every method requires
// the admin role on the calling context.
type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context, page, pageSize int) (*PaginatedResult[User], error)
	UpdateUser(ctx context.Context, userID string, update AdminUpdateUser) (*User, error)
	ListSessions(ctx context.Context) ([]InterviewSession, error)
	UpdateSession(ctx context.Context, sessionID string, update AdminUpdateSession) (*InterviewSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// ExportActivityCSV writes one row per session for offline analysis.
	ExportActivityCSV(ctx context.Context) ([]byte, error)
}
