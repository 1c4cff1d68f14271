package repositories

import (
	"context"
	"errors"

	"talenthub/internal/models"

	"github.com/jackc/pgx/v5"
)

// CandidateRepository is scoped by the owning user on every operation. Rows
// belonging to other users are invisible to the caller.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	List(ctx context.Context, userID int64) ([]*models.Candidate, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Candidate, error)
	Update(ctx context.Context, candidate *models.Candidate) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type candidateRepo struct {
	db Database
}

func NewCandidateRepository(db Database) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *models.Candidate) error {
	query := `
		INSERT INTO candidates (name, email, phone, skills, experience, department, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		candidate.Name, candidate.Email, candidate.Phone, candidate.Skills,
		candidate.Experience, candidate.Department, candidate.UserID).
		Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *candidateRepo) List(ctx context.Context, userID int64) ([]*models.Candidate, error) {
	query := `
		SELECT id, name, email, phone, skills, experience, department, user_id, created_at, updated_at
		FROM candidates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []*models.Candidate
	for rows.Next() {
		candidate := &models.Candidate{}
		if err := rows.Scan(&candidate.ID, &candidate.Name, &candidate.Email, &candidate.Phone,
			&candidate.Skills, &candidate.Experience, &candidate.Department, &candidate.UserID,
			&candidate.CreatedAt, &candidate.UpdatedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) GetByID(ctx context.Context, id, userID int64) (*models.Candidate, error) {
	candidate := &models.Candidate{}
	query := `
		SELECT id, name, email, phone, skills, experience, department, user_id, created_at, updated_at
		FROM candidates
		WHERE id = $1 AND user_id = $2
	`
	err := r.db.QueryRow(ctx, query, id, userID).
		Scan(&candidate.ID, &candidate.Name, &candidate.Email, &candidate.Phone,
			&candidate.Skills, &candidate.Experience, &candidate.Department, &candidate.UserID,
			&candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return candidate, nil
}

// Update replaces every mutable field. Returns ErrNotFound when no row matches
// both id and owner.
func (r *candidateRepo) Update(ctx context.Context, candidate *models.Candidate) error {
	query := `
		UPDATE candidates
		SET name = $1, email = $2, phone = $3, skills = $4, experience = $5, department = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		candidate.Name, candidate.Email, candidate.Phone, candidate.Skills,
		candidate.Experience, candidate.Department, candidate.ID, candidate.UserID).
		Scan(&candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `DELETE FROM candidates WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
