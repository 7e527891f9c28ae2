package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, owner_id, name, email, phone, skills, education,
	experience, certifications, created_at`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Skills,
		&c.Education, &c.Experience, &c.Certifications, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCandidate inserts a candidate and returns the stored row.
func (db *DB) CreateCandidate(ctx context.Context, candidate *Candidate) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (owner_id, name, email, phone, skills,
		                         education, experience, certifications)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+candidateColumns,
		candidate.OwnerID, candidate.Name, candidate.Email, candidate.Phone,
		candidate.Skills, candidate.Education, candidate.Experience, candidate.Certifications,
	)
	created, err := scanCandidate(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return created, nil
}

// GetCandidate retrieves a candidate by ID scoped to its owner. Returns
// nil when the candidate does not exist for this owner.
func (db *DB) GetCandidate(ctx context.Context, ownerID, id uuid.UUID) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	candidate, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

// ListCandidates returns the owner's candidates, newest first.
func (db *DB) ListCandidates(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates
		 WHERE owner_id = $1
		 ORDER BY created_at DESC
		 OFFSET $2 LIMIT $3`,
		ownerID, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, rows.Err()
}
