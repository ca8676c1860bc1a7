package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository/dao"
)

var (
	ErrAthleteContactExists = dao.ErrAthleteContactExists
	ErrAthleteNotFound      = dao.ErrAthleteNotFound
)

type AthleteDAO interface {
	Insert(ctx context.Context, athlete dao.Athlete) (dao.Athlete, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Athlete, error)
	FindByContact(ctx context.Context, contact string) (dao.Athlete, error)
	Update(ctx context.Context, athlete dao.Athlete) (dao.Athlete, error)
}

type AthleteRepository struct {
	dao AthleteDAO
}

func NewAthleteRepository(dao AthleteDAO) *AthleteRepository {
	return &AthleteRepository{
		dao: dao,
	}
}

func (r *AthleteRepository) Create(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	created, err := r.dao.Insert(ctx, dao.Athlete{
		ID:       uuid.New(),
		Name:     athlete.Name,
		Age:      athlete.Age,
		Gender:   athlete.Gender,
		Division: athlete.Division,
		Contact:  athlete.Contact,
		Password: athlete.Password,
	})
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AthleteRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Athlete, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AthleteRepository) FindByContact(ctx context.Context, contact string) (domain.Athlete, error) {
	found, err := r.dao.FindByContact(ctx, contact)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("r.dao.FindByContact -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AthleteRepository) Update(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	updated, err := r.dao.Update(ctx, dao.Athlete{
		ID:        athlete.ID,
		Name:      athlete.Name,
		Age:       athlete.Age,
		Gender:    athlete.Gender,
		Division:  athlete.Division,
		Contact:   athlete.Contact,
		Password:  athlete.Password,
		PhotoURL:  athlete.PhotoURL,
		CreatedAt: athlete.CreatedAt,
	})
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *AthleteRepository) daoToDomain(a dao.Athlete) domain.Athlete {
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
