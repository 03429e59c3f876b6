package reminder

import (
	"context"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/email"
	"go-interview-backend/pkg/logger"
)

// Mailer sends the reminder mail. Satisfied by email.EmailService.
type Mailer interface {
	IsConfigured() bool
	SendScheduleReminder(to string, data email.ScheduleEmailData) error
}

// Worker periodically scans for scheduled mocks starting soon and emails
// their owners once. A mock is marked before the mail is sent; a failed
// send is logged, not retried, so an owner never gets duplicate reminders.
type Worker struct {
	mockRepo domain.MockRepository
	mailer   Mailer
	interval time.Duration
	lead     time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewWorker(mockRepo domain.MockRepository, mailer Mailer, interval, lead time.Duration) *Worker {
	return &Worker{
		mockRepo: mockRepo,
		mailer:   mailer,
		interval: interval,
		lead:     lead,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the scan loop. No-op when SMTP is not configured.
func (w *Worker) Start() {
	if !w.mailer.IsConfigured() {
		logger.Log.Warn("Reminder worker disabled: email service not configured")
		close(w.done)
		return
	}

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		logger.Log.Info("Reminder worker started", "interval", w.interval, "lead", w.lead)
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				w.scan()
			}
		}
	}()
}

// Stop signals the loop to exit and waits for the in-flight scan.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	<-w.done
}

func (w *Worker) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	due, err := w.mockRepo.ListDueForReminder(ctx, time.Now(), w.lead)
	if err != nil {
		logger.Log.Error("Reminder scan failed", "error", err)
		return
	}

	for _, mock := range due {
		if err := w.mockRepo.MarkReminderSent(ctx, mock.ID); err != nil {
			logger.Log.Error("Failed to mark reminder sent", "mock_id", mock.ID, "error", err)
			continue
		}
		err := w.mailer.SendScheduleReminder(mock.Email, email.ScheduleEmailData{
			JobRole:      mock.JobRole,
			Experience:   mock.Experience,
			Mode:         mock.Mode,
			ScheduledFor: mock.ScheduledFor,
		})
		if err != nil {
			logger.Log.Error("Failed to send reminder", "mock_id", mock.ID, "error", err)
			continue
		}
		logger.Log.Info("Sent schedule reminder", "mock_id", mock.ID)
	}
}
