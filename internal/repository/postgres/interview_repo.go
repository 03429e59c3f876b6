package postgres

import (
	"context"
	"errors"
	"time"

	"go-interview-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview session repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const sessionColumns = `
	id, user_id, email, job_role, industry, experience, mode,
	resume_text, job_description, questions, answers, feedback,
	ideal_answers, overall_feedback, status, created_at, updated_at`

func scanSession(row pgx.Row) (*domain.InterviewSession, error) {
	var s domain.InterviewSession
	err := row.Scan(
		&s.ID, &s.UserID, &s.Email, &s.JobRole, &s.Industry, &s.Experience, &s.Mode,
		&s.ResumeText, &s.JobDescription, &s.Questions, &s.Answers, &s.Feedback,
		&s.IdealAnswers, &s.OverallFeedback, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new interview session. Question and answer sequences are
// stored as text[] columns, index-aligned.
func (r *interviewRepo) Create(ctx context.Context, session *domain.InterviewSession) error {
	query := `
		INSERT INTO interview_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Status == "" {
		session.Status = domain.SessionStatusCreated
	}

	_, err := r.db.Exec(ctx, query,
		session.ID, session.UserID, session.Email, session.JobRole, session.Industry,
		session.Experience, session.Mode, session.ResumeText, session.JobDescription,
		session.Questions, session.Answers, session.Feedback, session.IdealAnswers,
		session.OverallFeedback, session.Status, session.CreatedAt, session.UpdatedAt,
	)
	return err
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.InterviewSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM interview_sessions WHERE id = $1`
	return scanSession(r.db.QueryRow(ctx, query, id))
}

func (r *interviewRepo) Update(ctx context.Context, session *domain.InterviewSession) error {
	query := `
		UPDATE interview_sessions
		SET job_role = $2, industry = $3, experience = $4, mode = $5,
			resume_text = $6, job_description = $7, questions = $8, answers = $9,
			feedback = $10, ideal_answers = $11, overall_feedback = $12,
			status = $13, updated_at = $14
		WHERE id = $1`

	session.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		session.ID, session.JobRole, session.Industry, session.Experience, session.Mode,
		session.ResumeText, session.JobDescription, session.Questions, session.Answers,
		session.Feedback, session.IdealAnswers, session.OverallFeedback,
		session.Status, session.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateFeedback stores scoring results without touching other columns
func (r *interviewRepo) UpdateFeedback(ctx context.Context, id string, feedback, idealAnswers []string, overall string) error {
	query := `
		UPDATE interview_sessions
		SET feedback = $2, ideal_answers = $3, overall_feedback = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, feedback, idealAnswers, overall, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) ListByUser(ctx context.Context, userID string) ([]domain.InterviewSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM interview_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *interviewRepo) ListAll(ctx context.Context) ([]domain.InterviewSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM interview_sessions
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func collectSessions(rows pgx.Rows) ([]domain.InterviewSession, error) {
	var sessions []domain.InterviewSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interview_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interviewRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM interview_sessions WHERE user_id = $1`, userID)
	return err
}

// CountCreatedSince counts sessions created at or after the given instant;
// the quota check passes the start of the current calendar month.
func (r *interviewRepo) CountCreatedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM interview_sessions
		WHERE user_id = $1 AND created_at >= $2`

	var count int
	err := r.db.QueryRow(ctx, query, userID, since).Scan(&count)
	return count, err
}

func (r *interviewRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM interview_sessions`).Scan(&count)
	return count, err
}

func (r *interviewRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM interview_sessions WHERE status = $1`, status).Scan(&count)
	return count, err
}

// PastMaterials returns distinct non-empty resume texts and job
// descriptions from the user's previous sessions, newest first.
func (r *interviewRepo) PastMaterials(ctx context.Context, userID string) (*domain.PastMaterials, error) {
	materials := &domain.PastMaterials{
		Resumes:  []string{},
		JobDescs: []string{},
	}

	query := `
		SELECT DISTINCT ON (resume_text) resume_text
		FROM interview_sessions
		WHERE user_id = $1 AND resume_text <> ''
		ORDER BY resume_text, created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		materials.Resumes = append(materials.Resumes, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT DISTINCT ON (job_description) job_description
		FROM interview_sessions
		WHERE user_id = $1 AND job_description <> ''
		ORDER BY job_description, created_at DESC`

	rows, err = r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		materials.JobDescs = append(materials.JobDescs, text)
	}
	return materials, rows.Err()
}
