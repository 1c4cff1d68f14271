package services

import (
	"context"

	"talenthub/internal/models"
	"talenthub/internal/repositories"
)

// CandidateService sits between the handlers and the repository. Uniqueness
// and owner scoping are enforced by store constraints, so the service stays
// thin; it exists to keep handlers off the repository and to give tests a seam.
type CandidateService interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	List(ctx context.Context, userID int64) ([]*models.Candidate, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Candidate, error)
	Update(ctx context.Context, candidate *models.Candidate) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type candidateService struct {
	candidateRepo repositories.CandidateRepository
}

func NewCandidateService(candidateRepo repositories.CandidateRepository) CandidateService {
	return &candidateService{candidateRepo: candidateRepo}
}

func (s *candidateService) Create(ctx context.Context, candidate *models.Candidate) error {
	return s.candidateRepo.Create(ctx, candidate)
}

func (s *candidateService) List(ctx context.Context, userID int64) ([]*models.Candidate, error) {
	return s.candidateRepo.List(ctx, userID)
}

func (s *candidateService) GetByID(ctx context.Context, id, userID int64) (*models.Candidate, error) {
	return s.candidateRepo.GetByID(ctx, id, userID)
}

func (s *candidateService) Update(ctx context.Context, candidate *models.Candidate) error {
	return s.candidateRepo.Update(ctx, candidate)
}

func (s *candidateService) Delete(ctx context.Context, id, userID int64) (bool, error) {
	return s.candidateRepo.Delete(ctx, id, userID)
}
