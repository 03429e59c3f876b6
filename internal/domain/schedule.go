package domain

import (
	"context"
	"fmt"
	"time"
)

// Derived scheduled-mock states. Never stored: computed from ScheduledFor
// against the evaluation time.
const (
	MockStatusUpcoming = "Upcoming"
	MockStatusExpired  = "Expired"
)

// ScheduledMock is a future-dated interview intent, independent of any
// session until explicitly taken.
type ScheduledMock struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	ScheduledFor   time.Time `json:"scheduled_for"`
	Mode           string    `json:"mode"`
	JobRole        string    `json:"job_role"`
	Industry       string    `json:"industry,omitempty"`
	Experience     string    `json:"experience"`
	ResumeText     string    `json:"resume_text,omitempty"`
	JobDescription string    `json:"job_description,omitempty"`
	ReminderSent   bool      `json:"reminder_sent"`
	CreatedAt      time.Time `json:"created_at"`
}

// StatusAt reports Upcoming while ScheduledFor is strictly in the future
// relative to now, Expired once passed.
func (m *ScheduledMock) StatusAt(now time.Time) string {
	if m.ScheduledFor.After(now) {
		return MockStatusUpcoming
	}
	return MockStatusExpired
}

// ScheduleInput carries the raw date and 12-hour clock components the
// scheduling form submits.
type ScheduleInput struct {
	UserID         string `validate:"required"`
	Email          string
	Date           string `validate:"required"` // YYYY-MM-DD
	Hour           int    `validate:"min=1,max=12"`
	Minute         int    `validate:"min=0,max=59"`
	Second         int    `validate:"min=0,max=59"`
	Meridiem       string `validate:"oneof=AM PM"`
	Mode           string `validate:"required,oneof=text audio video"`
	JobRole        string `validate:"required"`
	Industry       string
	Experience     string `validate:"required,oneof=Entry Mid Senior"`
	ResumeText     string `validate:"max=2000"`
	JobDescription string
}

// AssembleScheduleTime converts the date plus 12-hour clock components into
// an absolute timestamp: 12 AM maps to 00 and 12 PM stays 12, per civil
// time convention.
func AssembleScheduleTime(date string, hour, minute, second int, meridiem string, loc *time.Location) (time.Time, error) {
	if hour < 1 || hour > 12 {
		return time.Time{}, fmt.Errorf("hour %d outside 1-12", hour)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("minute %d outside 0-59", minute)
	}
	if second < 0 || second > 59 {
		return time.Time{}, fmt.Errorf("second %d outside 0-59", second)
	}

	switch meridiem {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return time.Time{}, fmt.Errorf("meridiem %q is not AM or PM", meridiem)
	}

	assembled := fmt.Sprintf("%sT%02d:%02d:%02d", date, hour, minute, second)
	t, err := time.ParseInLocation("2006-01-02T15:04:05", assembled, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date or time %q: %w", assembled, err)
	}
	return t, nil
}

// MockRepository defines data access methods for scheduled mocks
type MockRepository interface {
	Create(ctx context.Context, mock *ScheduledMock) error
	GetByID(ctx context.Context, id string) (*ScheduledMock, error)
	ListByUser(ctx context.Context, userID string) ([]ScheduledMock, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	// ListDueForReminder returns mocks whose start time falls inside
	// (now, now+lead] and which have not been reminded yet.
	ListDueForReminder(ctx context.Context, now time.Time, lead time.Duration) ([]ScheduledMock, error)
	MarkReminderSent(ctx context.Context, id string) error
}

// ScheduleUsecase manages scheduled-mock entries.
type ScheduleUsecase interface {
	Schedule(ctx context.Context, input ScheduleInput) (*ScheduledMock, error)
	List(ctx context.Context, userID string) ([]ScheduledMock, error)
	// Take seeds a new interview session from the mock's stored parameters.
	// The mock itself persists and must be deleted separately if desired.
	Take(ctx context.Context, requesterID, mockID string) (*InterviewSession, error)
	Delete(ctx context.Context, requesterID, mockID string) error
}
