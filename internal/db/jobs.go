package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, owner_id, title, summary, skills, experience_required,
	education_required, responsibilities, created_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.OwnerID, &j.Title, &j.Summary, &j.Skills,
		&j.ExperienceRequired, &j.EducationRequired, &j.Responsibilities, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// CreateJob inserts a job and returns the stored row.
func (db *DB) CreateJob(ctx context.Context, job *Job) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (owner_id, title, summary, skills, experience_required,
		                   education_required, responsibilities)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+jobColumns,
		job.OwnerID, job.Title, job.Summary, job.Skills,
		job.ExperienceRequired, job.EducationRequired, job.Responsibilities,
	)
	created, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// GetJob retrieves a job by ID scoped to its owner. Returns nil when the
// job does not exist for this owner.
func (db *DB) GetJob(ctx context.Context, ownerID, id uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs returns the owner's jobs, newest first.
func (db *DB) ListJobs(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE owner_id = $1
		 ORDER BY created_at DESC
		 OFFSET $2 LIMIT $3`,
		ownerID, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
