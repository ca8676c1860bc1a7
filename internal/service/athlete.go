package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository"
)

var (
	ErrAthleteNotFound = repository.ErrAthleteNotFound
)

type AthleteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Athlete, error)
	Update(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error)
}

type AthleteEndorsementRepository interface {
	CountApprovedByAthlete(ctx context.Context, athleteID uuid.UUID) (int, error)
}

type PhotoStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type AthleteService struct {
	repo         AthleteRepository
	endorsements AthleteEndorsementRepository
	photos       PhotoStorage
}

func NewAthleteService(repo AthleteRepository, endorsements AthleteEndorsementRepository, photos PhotoStorage) *AthleteService {
	return &AthleteService{
		repo:         repo,
		endorsements: endorsements,
		photos:       photos,
	}
}

// GetAthlete returns the profile with the derived matches-played count
// attached. The count is never stored; it is recomputed from approved
// endorsements on every read.
func (s *AthleteService) GetAthlete(ctx context.Context, id uuid.UUID) (domain.Athlete, error) {
	athlete, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return domain.Athlete{}, ErrAthleteNotFound
		}

		return domain.Athlete{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	count, err := s.endorsements.CountApprovedByAthlete(ctx, id)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("s.endorsements.CountApprovedByAthlete -> %w", err)
	}
	athlete.MatchesPlayed = count

	return athlete, nil
}

// UpdateAthlete applies a partial profile update. Only fields present in the
// patch change; a password change is re-hashed before it is stored.
func (s *AthleteService) UpdateAthlete(ctx context.Context, id uuid.UUID, patch domain.AthletePatch) (domain.Athlete, error) {
	athlete, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return domain.Athlete{}, ErrAthleteNotFound
		}

		return domain.Athlete{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if patch.Password != nil {
		hashed, err := hashPassword(*patch.Password)
		if err != nil {
			return domain.Athlete{}, err
		}
		patch.Password = &hashed
	}

	patch.Apply(&athlete)

	updated, err := s.repo.Update(ctx, athlete)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteContactExists) {
			return domain.Athlete{}, ErrAthleteExists
		}

		return domain.Athlete{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// AttachPhoto uploads a profile photo to object storage and records the
// resulting URL on the athlete.
func (s *AthleteService) AttachPhoto(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (domain.Athlete, error) {
	athlete, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return domain.Athlete{}, ErrAthleteNotFound
		}

		return domain.Athlete{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	key := fmt.Sprintf("athletes/%s/photo%s", id, path.Ext(filename))
	url, err := s.photos.Upload(ctx, key, contentType, body)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("s.photos.Upload -> %w", err)
	}

	athlete.PhotoURL = url
	updated, err := s.repo.Update(ctx, athlete)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
