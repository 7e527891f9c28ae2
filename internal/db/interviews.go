package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const interviewColumns = `id, owner_id, candidate_id, candidate_name, job_id, job_title,
	interview_time, format, invite_email, created_at`

func scanInterview(row pgx.Row) (*Interview, error) {
	var iv Interview
	err := row.Scan(&iv.ID, &iv.OwnerID, &iv.CandidateID, &iv.CandidateName,
		&iv.JobID, &iv.JobTitle, &iv.InterviewTime, &iv.Format, &iv.InviteEmail,
		&iv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// CreateInterview inserts an interview and returns the stored row.
// Returns ErrDuplicate when one already exists for this (owner, job,
// candidate) tuple.
func (db *DB) CreateInterview(ctx context.Context, interview *Interview) (*Interview, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (owner_id, candidate_id, candidate_name, job_id,
		                         job_title, interview_time, format, invite_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+interviewColumns,
		interview.OwnerID, interview.CandidateID, interview.CandidateName,
		interview.JobID, interview.JobTitle, interview.InterviewTime,
		interview.Format, interview.InviteEmail,
	)
	created, err := scanInterview(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return created, nil
}

// GetInterviewByPair retrieves the interview for an (owner, job,
// candidate) tuple. Returns nil when none exists.
func (db *DB) GetInterviewByPair(ctx context.Context, ownerID, jobID, candidateID uuid.UUID) (*Interview, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews
		 WHERE owner_id = $1 AND job_id = $2 AND candidate_id = $3`,
		ownerID, jobID, candidateID,
	)
	interview, err := scanInterview(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return interview, nil
}

// ListInterviews returns the owner's interviews, soonest first.
func (db *DB) ListInterviews(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]Interview, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews
		 WHERE owner_id = $1
		 ORDER BY interview_time ASC
		 OFFSET $2 LIMIT $3`,
		ownerID, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	return collectInterviews(rows)
}

// ListInterviewsByCandidate returns the owner's interviews for one
// candidate, soonest first.
func (db *DB) ListInterviewsByCandidate(ctx context.Context, ownerID, candidateID uuid.UUID) ([]Interview, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+interviewColumns+` FROM interviews
		 WHERE owner_id = $1 AND candidate_id = $2
		 ORDER BY interview_time ASC`,
		ownerID, candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews for candidate: %w", err)
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func collectInterviews(rows pgx.Rows) ([]Interview, error) {
	var interviews []Interview
	for rows.Next() {
		interview, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, *interview)
	}
	return interviews, rows.Err()
}
