package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository/dao"
)

var (
	ErrInstitutionContactExists = dao.ErrInstitutionContactExists
	ErrInstitutionNotFound      = dao.ErrInstitutionNotFound
)

type InstitutionDAO interface {
	Insert(ctx context.Context, institution dao.Institution) (dao.Institution, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Institution, error)
	FindByContact(ctx context.Context, contact string) (dao.Institution, error)
	SearchByName(ctx context.Context, name string) ([]dao.Institution, error)
	Update(ctx context.Context, institution dao.Institution) (dao.Institution, error)
}

type InstitutionRepository struct {
	dao InstitutionDAO
}

func NewInstitutionRepository(dao InstitutionDAO) *InstitutionRepository {
	return &InstitutionRepository{
		dao: dao,
	}
}

func (r *InstitutionRepository) Create(ctx context.Context, institution domain.Institution) (domain.Institution, error) {
	created, err := r.dao.Insert(ctx, dao.Institution{
		ID:       uuid.New(),
		Name:     institution.Name,
		Contact:  institution.Contact,
		Password: institution.Password,
	})
	if err != nil {
		return domain.Institution{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InstitutionRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Institution, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Institution{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InstitutionRepository) FindByContact(ctx context.Context, contact string) (domain.Institution, error) {
	found, err := r.dao.FindByContact(ctx, contact)
	if err != nil {
		return domain.Institution{}, fmt.Errorf("r.dao.FindByContact -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InstitutionRepository) SearchByName(ctx context.Context, name string) ([]domain.Institution, error) {
	found, err := r.dao.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchByName -> %w", err)
	}

	institutions := make([]domain.Institution, 0, len(found))
	for _, i := range found {
		institutions = append(institutions, r.daoToDomain(i))
	}

	return institutions, nil
}

func (r *InstitutionRepository) Update(ctx context.Context, institution domain.Institution) (domain.Institution, error) {
	updated, err := r.dao.Update(ctx, dao.Institution{
		ID:        institution.ID,
		Name:      institution.Name,
		Contact:   institution.Contact,
		Password:  institution.Password,
		CreatedAt: institution.CreatedAt,
	})
	if err != nil {
		return domain.Institution{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *InstitutionRepository) daoToDomain(i dao.Institution) domain.Institution {
	return domain.Institution{
		ID:        i.ID,
		Name:      i.Name,
		Contact:   i.Contact,
		Password:  i.Password,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
