package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository/dao"
)

var (
	ErrEndorsementNotFound = dao.ErrEndorsementNotFound
	ErrEndorsementReviewed = dao.ErrEndorsementReviewed
)

type EndorsementDAO interface {
	Insert(ctx context.Context, endorsement dao.Endorsement) (dao.Endorsement, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Endorsement, error)
	FindPendingByInstitution(ctx context.Context, institutionID uuid.UUID) ([]dao.Endorsement, error)
	MarkReviewed(ctx context.Context, id uuid.UUID, approve bool) (dao.Endorsement, error)
	CountApprovedByAthlete(ctx context.Context, athleteID uuid.UUID) (int64, error)
	FindLatestForPair(ctx context.Context, athleteID, tournamentID uuid.UUID) (dao.Endorsement, error)
	FindApprovedAthletes(ctx context.Context, institutionID uuid.UUID) ([]dao.Athlete, error)
}

type EndorsementRepository struct {
	dao EndorsementDAO
}

func NewEndorsementRepository(dao EndorsementDAO) *EndorsementRepository {
	return &EndorsementRepository{
		dao: dao,
	}
}

// Create inserts a new request in the pending state, flags down.
func (r *EndorsementRepository) Create(ctx context.Context, athleteID, institutionID, tournamentID uuid.UUID) (domain.Endorsement, error) {
	created, err := r.dao.Insert(ctx, dao.Endorsement{
		ID:            uuid.New(),
		AthleteID:     athleteID,
		InstitutionID: institutionID,
		TournamentID:  tournamentID,
		Reviewed:      false,
		Approved:      false,
	})
	if err != nil {
		return domain.Endorsement{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EndorsementRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Endorsement, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Endorsement{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EndorsementRepository) FindPendingByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.PendingEndorsement, error) {
	found, err := r.dao.FindPendingByInstitution(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPendingByInstitution -> %w", err)
	}

	pending := make([]domain.PendingEndorsement, 0, len(found))
	for _, e := range found {
		pending = append(pending, domain.PendingEndorsement{
			ID:         e.ID,
			Athlete:    r.athleteDaoToDomain(e.Athlete),
			Tournament: r.tournamentDaoToDomain(e.Tournament),
		})
	}

	return pending, nil
}

func (r *EndorsementRepository) MarkReviewed(ctx context.Context, id uuid.UUID, approve bool) (domain.Endorsement, error) {
	reviewed, err := r.dao.MarkReviewed(ctx, id, approve)
	if err != nil {
		return domain.Endorsement{}, fmt.Errorf("r.dao.MarkReviewed -> %w", err)
	}

	return r.daoToDomain(reviewed), nil
}

func (r *EndorsementRepository) CountApprovedByAthlete(ctx context.Context, athleteID uuid.UUID) (int, error) {
	count, err := r.dao.CountApprovedByAthlete(ctx, athleteID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountApprovedByAthlete -> %w", err)
	}

	return int(count), nil
}

func (r *EndorsementRepository) FindLatestForPair(ctx context.Context, athleteID, tournamentID uuid.UUID) (domain.Endorsement, error) {
	found, err := r.dao.FindLatestForPair(ctx, athleteID, tournamentID)
	if err != nil {
		return domain.Endorsement{}, fmt.Errorf("r.dao.FindLatestForPair -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EndorsementRepository) FindApprovedAthletes(ctx context.Context, institutionID uuid.UUID) ([]domain.Athlete, error) {
	found, err := r.dao.FindApprovedAthletes(ctx, institutionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindApprovedAthletes -> %w", err)
	}

	athletes := make([]domain.Athlete, 0, len(found))
	for _, a := range found {
		athletes = append(athletes, r.athleteDaoToDomain(a))
	}

	return athletes, nil
}

func (r *EndorsementRepository) daoToDomain(e dao.Endorsement) domain.Endorsement {
	return domain.Endorsement{
		ID:            e.ID,
		AthleteID:     e.AthleteID,
		InstitutionID: e.InstitutionID,
		TournamentID:  e.TournamentID,
		Reviewed:      e.Reviewed,
		Approved:      e.Approved,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *EndorsementRepository) athleteDaoToDomain(a dao.Athlete) domain.Athlete {
	return domain.Athlete{
		ID:        a.ID,
		Name:      a.Name,
		Age:       a.Age,
		Gender:    a.Gender,
		Division:  a.Division,
		Contact:   a.Contact,
		Password:  a.Password,
		PhotoURL:  a.PhotoURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *EndorsementRepository) tournamentDaoToDomain(t dao.Tournament) domain.Tournament {
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
