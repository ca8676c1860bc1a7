package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository"
)

var (
	ErrInstitutionNotFound = repository.ErrInstitutionNotFound
)

type InstitutionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Institution, error)
	SearchByName(ctx context.Context, name string) ([]domain.Institution, error)
	Update(ctx context.Context, institution domain.Institution) (domain.Institution, error)
}

type InstitutionService struct {
	repo InstitutionRepository
}

func NewInstitutionService(repo InstitutionRepository) *InstitutionService {
	return &InstitutionService{
		repo: repo,
	}
}

func (s *InstitutionService) GetInstitution(ctx context.Context, id uuid.UUID) (domain.Institution, error) {
	institution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return domain.Institution{}, ErrInstitutionNotFound
		}

		return domain.Institution{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return institution, nil
}

// SearchInstitutions matches institutions by name substring, case-insensitive.
func (s *InstitutionService) SearchInstitutions(ctx context.Context, name string) ([]domain.Institution, error) {
	institutions, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchByName -> %w", err)
	}

	return institutions, nil
}

// UpdateInstitution changes the contact card (name and contact) of an
// institution. Credentials are not touched here.
func (s *InstitutionService) UpdateInstitution(ctx context.Context, id uuid.UUID, name, contact string) (domain.Institution, error) {
	institution, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return domain.Institution{}, ErrInstitutionNotFound
		}

		return domain.Institution{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	institution.Name = name
	institution.Contact = contact

	updated, err := s.repo.Update(ctx, institution)
	if err != nil {
		if errors.Is(err, repository.ErrInstitutionContactExists) {
			return domain.Institution{}, ErrInstitutionExists
		}

		return domain.Institution{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
