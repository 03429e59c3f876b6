package domain

import "errors"

// ErrNotFound is returned by repositories when no row matched.
// Delete usecases translate it into a successful no-op so repeated
// deletes stay safe for the caller.
var ErrNotFound = errors.New("not found")
