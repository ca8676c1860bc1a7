package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository/dao"
)

var (
	ErrTournamentNotFound  = dao.ErrTournamentNotFound
	ErrTournamentFinalized = dao.ErrTournamentFinalized
)

type TournamentDAO interface {
	Insert(ctx context.Context, tournament dao.Tournament) (dao.Tournament, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Tournament, error)
	FindAll(ctx context.Context) ([]dao.Tournament, error)
	FindOngoing(ctx context.Context) ([]dao.Tournament, error)
	FindOverdueOngoing(ctx context.Context, before time.Time) ([]dao.Tournament, error)
	RecordResults(ctx context.Context, id uuid.UUID, winner, runnerUp string, winnerScore, runnerScore int) (dao.Tournament, error)
}

type TournamentRepository struct {
	dao TournamentDAO
}

func NewTournamentRepository(dao TournamentDAO) *TournamentRepository {
	return &TournamentRepository{
		dao: dao,
	}
}

func (r *TournamentRepository) Create(ctx context.Context, tournament domain.Tournament) (domain.Tournament, error) {
	created, err := r.dao.Insert(ctx, dao.Tournament{
		ID:        uuid.New(),
		Name:      tournament.Name,
		Slug:      tournament.Slug,
		Division:  tournament.Division,
		Stage:     tournament.Stage,
		Location:  tournament.Location,
		StartDate: tournament.StartDate,
		EndDate:   tournament.EndDate,
		Ongoing:   true,
	})
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TournamentRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Tournament, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TournamentRepository) FindAll(ctx context.Context) ([]domain.Tournament, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *TournamentRepository) FindOngoing(ctx context.Context) ([]domain.Tournament, error) {
	found, err := r.dao.FindOngoing(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOngoing -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *TournamentRepository) FindOverdueOngoing(ctx context.Context, before time.Time) ([]domain.Tournament, error) {
	found, err := r.dao.FindOverdueOngoing(ctx, before)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOverdueOngoing -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *TournamentRepository) RecordResults(ctx context.Context, id uuid.UUID, results domain.TournamentResults) (domain.Tournament, error) {
	finalized, err := r.dao.RecordResults(ctx, id, results.Winner, results.RunnerUp, results.WinnerScore, results.RunnerScore)
	if err != nil {
		return domain.Tournament{}, fmt.Errorf("r.dao.RecordResults -> %w", err)
	}

	return r.daoToDomain(finalized), nil
}

func (r *TournamentRepository) daoToDomain(t dao.Tournament) domain.Tournament {
	return domain.Tournament{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Division:    t.Division,
		Stage:       t.Stage,
		Location:    t.Location,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Winner:      t.Winner,
		RunnerUp:    t.RunnerUp,
		WinnerScore: t.WinnerScore,
		RunnerScore: t.RunnerScore,
		Ongoing:     t.Ongoing,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TournamentRepository) daosToDomains(found []dao.Tournament) []domain.Tournament {
	tournaments := make([]domain.Tournament, 0, len(found))
	for _, t := range found {
		tournaments = append(tournaments, r.daoToDomain(t))
	}

	return tournaments
}
