package postgres

import (
	"context"
	"errors"
	"time"

	"go-interview-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type mockRepo struct {
	db *pgxpool.Pool
}

// NewMockRepository creates a new scheduled-mock repository
func NewMockRepository(db *pgxpool.Pool) domain.MockRepository {
	return &mockRepo{db: db}
}

const mockColumns = `
	id, user_id, email, scheduled_for, mode, job_role, industry,
	experience, resume_text, job_description, reminder_sent, created_at`

func scanMock(row pgx.Row) (*domain.ScheduledMock, error) {
	var m domain.ScheduledMock
	err := row.Scan(
		&m.ID, &m.UserID, &m.Email, &m.ScheduledFor, &m.Mode, &m.JobRole,
		&m.Industry, &m.Experience, &m.ResumeText, &m.JobDescription,
		&m.ReminderSent, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *mockRepo) Create(ctx context.Context, mock *domain.ScheduledMock) error {
	query := `
		INSERT INTO scheduled_mocks (` + mockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	mock.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		mock.ID, mock.UserID, mock.Email, mock.ScheduledFor, mock.Mode,
		mock.JobRole, mock.Industry, mock.Experience, mock.ResumeText,
		mock.JobDescription, mock.ReminderSent, mock.CreatedAt,
	)
	return err
}

func (r *mockRepo) GetByID(ctx context.Context, id string) (*domain.ScheduledMock, error) {
	query := `SELECT ` + mockColumns + ` FROM scheduled_mocks WHERE id = $1`
	return scanMock(r.db.QueryRow(ctx, query, id))
}

func (r *mockRepo) ListByUser(ctx context.Context, userID string) ([]domain.ScheduledMock, error) {
	query := `SELECT ` + mockColumns + `
		FROM scheduled_mocks
		WHERE user_id = $1
		ORDER BY scheduled_for ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mocks []domain.ScheduledMock
	for rows.Next() {
		m, err := scanMock(rows)
		if err != nil {
			return nil, err
		}
		mocks = append(mocks, *m)
	}
	return mocks, rows.Err()
}

func (r *mockRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM scheduled_mocks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mockRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM scheduled_mocks WHERE user_id = $1`, userID)
	return err
}

// ListDueForReminder returns mocks starting within (now, now+lead] that
// have not been reminded yet
func (r *mockRepo) ListDueForReminder(ctx context.Context, now time.Time, lead time.Duration) ([]domain.ScheduledMock, error) {
	query := `SELECT ` + mockColumns + `
		FROM scheduled_mocks
		WHERE reminder_sent = FALSE AND scheduled_for > $1 AND scheduled_for <= $2
		ORDER BY scheduled_for ASC`

	rows, err := r.db.Query(ctx, query, now, now.Add(lead))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mocks []domain.ScheduledMock
	for rows.Next() {
		m, err := scanMock(rows)
		if err != nil {
			return nil, err
		}
		mocks = append(mocks, *m)
	}
	return mocks, rows.Err()
}

func (r *mockRepo) MarkReminderSent(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `UPDATE scheduled_mocks SET reminder_sent = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
