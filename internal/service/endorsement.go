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
	ErrEndorsementNotFound = repository.ErrEndorsementNotFound
	ErrEndorsementReviewed = repository.ErrEndorsementReviewed
)

type EndorsementRepository interface {
	Create(ctx context.Context, athleteID, institutionID, tournamentID uuid.UUID) (domain.Endorsement, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Endorsement, error)
	FindPendingByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.PendingEndorsement, error)
	MarkReviewed(ctx context.Context, id uuid.UUID, approve bool) (domain.Endorsement, error)
	CountApprovedByAthlete(ctx context.Context, athleteID uuid.UUID) (int, error)
	FindLatestForPair(ctx context.Context, athleteID, tournamentID uuid.UUID) (domain.Endorsement, error)
	FindApprovedAthletes(ctx context.Context, institutionID uuid.UUID) ([]domain.Athlete, error)
}

type EndorsementAthleteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Athlete, error)
}

type EndorsementInstitutionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Institution, error)
}

type EndorsementTournamentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Tournament, error)
}

// EndorsementService owns the endorsement lifecycle (pending -> approved or
// rejected, reviewed exactly once) and the views derived from it: athlete
// eligibility, matches played, and institution rosters.
type EndorsementService struct {
	repo         EndorsementRepository
	athletes     EndorsementAthleteRepository
	institutions EndorsementInstitutionRepository
	tournaments  EndorsementTournamentRepository
}

func NewEndorsementService(
	repo EndorsementRepository,
	athletes EndorsementAthleteRepository,
	institutions EndorsementInstitutionRepository,
	tournaments EndorsementTournamentRepository,
) *EndorsementService {
	return &EndorsementService{
		repo:         repo,
		athletes:     athletes,
		institutions: institutions,
		tournaments:  tournaments,
	}
}

// Request creates a new pending endorsement after checking all three
// referents resolve. Repeated requests for the same triple are allowed; the
// projector picks the latest record when they conflict.
func (s *EndorsementService) Request(ctx context.Context, athleteID, institutionID, tournamentID uuid.UUID) (domain.Endorsement, error) {
	if _, err := s.athletes.FindByID(ctx, athleteID); err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return domain.Endorsement{}, ErrAthleteNotFound
		}

		return domain.Endorsement{}, fmt.Errorf("s.athletes.FindByID -> %w", err)
	}

	if _, err := s.institutions.FindByID(ctx, institutionID); err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return domain.Endorsement{}, ErrInstitutionNotFound
		}

		return domain.Endorsement{}, fmt.Errorf("s.institutions.FindByID -> %w", err)
	}

	if _, err := s.tournaments.FindByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) {
			return domain.Endorsement{}, ErrTournamentNotFound
		}

		return domain.Endorsement{}, fmt.Errorf("s.tournaments.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, athleteID, institutionID, tournamentID)
	if err != nil {
		return domain.Endorsement{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Review settles a pending endorsement. Reviewing an already-settled record
// fails with ErrEndorsementReviewed; the first reviewer wins.
func (s *EndorsementService) Review(ctx context.Context, id uuid.UUID, approve bool) (domain.Endorsement, error) {
	reviewed, err := s.repo.MarkReviewed(ctx, id, approve)
	if err != nil {
		if errors.Is(err, repository.ErrEndorsementNotFound) || errors.Is(err, repository.ErrEndorsementReviewed) {
			return domain.Endorsement{}, err
		}

		return domain.Endorsement{}, fmt.Errorf("s.repo.MarkReviewed -> %w", err)
	}

	return reviewed, nil
}

func (s *EndorsementService) ListPending(ctx context.Context, institutionID uuid.UUID) ([]domain.PendingEndorsement, error) {
	if _, err := s.institutions.FindByID(ctx, institutionID); err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return nil, ErrInstitutionNotFound
		}

		return nil, fmt.Errorf("s.institutions.FindByID -> %w", err)
	}

	pending, err := s.repo.FindPendingByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPendingByInstitution -> %w", err)
	}

	return pending, nil
}

// Eligibility reports whether an athlete may appear as a participant in a
// tournament. An athlete with no endorsement on record has not entered and is
// not eligible. A pending or approved request grants eligibility; an explicit
// rejection denies it. When duplicate requests exist the most recently
// created one governs.
func (s *EndorsementService) Eligibility(ctx context.Context, athleteID, tournamentID uuid.UUID) (bool, error) {
	endorsement, err := s.repo.FindLatestForPair(ctx, athleteID, tournamentID)
	if err != nil {
		if errors.Is(err, repository.ErrEndorsementNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("s.repo.FindLatestForPair -> %w", err)
	}

	return endorsement.Eligible(), nil
}

// MatchesPlayed counts the athlete's approved endorsements across all
// tournaments and institutions.
func (s *EndorsementService) MatchesPlayed(ctx context.Context, athleteID uuid.UUID) (int, error) {
	count, err := s.repo.CountApprovedByAthlete(ctx, athleteID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountApprovedByAthlete -> %w", err)
	}

	return count, nil
}

// ApprovedRoster lists the distinct athletes the institution has approved for
// a tournament still ongoing.
func (s *EndorsementService) ApprovedRoster(ctx context.Context, institutionID uuid.UUID) ([]domain.Athlete, error) {
	if _, err := s.institutions.FindByID(ctx, institutionID); err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return nil, ErrInstitutionNotFound
		}

		return nil, fmt.Errorf("s.institutions.FindByID -> %w", err)
	}

	athletes, err := s.repo.FindApprovedAthletes(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindApprovedAthletes -> %w", err)
	}

	return athletes, nil
}
