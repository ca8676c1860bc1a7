package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository"
)

var (
	ErrTournamentNotFound  = repository.ErrTournamentNotFound
	ErrTournamentFinalized = repository.ErrTournamentFinalized
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Tournament, error)
	FindAll(ctx context.Context) ([]domain.Tournament, error)
	FindOngoing(ctx context.Context) ([]domain.Tournament, error)
	RecordResults(ctx context.Context, id uuid.UUID, results domain.TournamentResults) (domain.Tournament, error)
}

type TournamentEndorsementRepository interface {
	FindLatestForPair(ctx context.Context, athleteID, tournamentID uuid.UUID) (domain.Endorsement, error)
}

type TournamentService struct {
	repo         TournamentRepository
	endorsements TournamentEndorsementRepository
}

func NewTournamentService(repo TournamentRepository, endorsements TournamentEndorsementRepository) *TournamentService {
	return &TournamentService{
		repo:         repo,
		endorsements: endorsements,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	tournament.Slug = slug.Make(tournament.Name)

	created, err := s.repo.Create(ctx, tournament)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListAll is the spectator view: every tournament, finalized ones included.
func (s *TournamentService) ListAll(ctx context.Context) ([]domain.Tournament, error) {
	tournaments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return tournaments, nil
}

// ListOngoingForAthlete returns the ongoing tournaments, each tagged with the
// athlete's current eligibility. An athlete with no endorsement on record has
// not entered and shows as not eligible; a pending or approved request shows
// as eligible, a rejection does not.
func (s *TournamentService) ListOngoingForAthlete(ctx context.Context, athleteID uuid.UUID) ([]domain.TournamentStatus, error) {
	tournaments, err := s.repo.FindOngoing(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOngoing -> %w", err)
	}

	statuses := make([]domain.TournamentStatus, 0, len(tournaments))
	for _, t := range tournaments {
		eligible := false

		endorsement, err := s.endorsements.FindLatestForPair(ctx, athleteID, t.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrEndorsementNotFound) {
				return nil, fmt.Errorf("s.endorsements.FindLatestForPair -> %w", err)
			}
		} else {
			eligible = endorsement.Eligible()
		}

		statuses = append(statuses, domain.TournamentStatus{
			Tournament: t,
			Eligible:   eligible,
		})
	}

	return statuses, nil
}

// RecordResults finalizes a tournament: results attach and the ongoing flag
// drops in one atomic step. A finalized tournament cannot be finalized again.
func (s *TournamentService) RecordResults(ctx context.Context, id uuid.UUID, results domain.TournamentResults) (domain.Tournament, error) {
	finalized, err := s.repo.RecordResults(ctx, id, results)
	if err != nil {
		if errors.Is(err, repository.ErrTournamentNotFound) || errors.Is(err, repository.ErrTournamentFinalized) {
			return domain.Tournament{}, err
		}

		return domain.Tournament{}, fmt.Errorf("s.repo.RecordResults -> %w", err)
	}

	return finalized, nil
}
