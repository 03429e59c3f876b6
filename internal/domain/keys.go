package domain

// CtxKey is the typed key used for identity values stamped onto the
// request context by the auth middleware.
type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
