package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wushufed/tournament-backend/internal/domain"
	"github.com/wushufed/tournament-backend/internal/repository"
)

var (
	ErrAthleteExists     = repository.ErrAthleteContactExists
	ErrInstitutionExists = repository.ErrInstitutionContactExists
	ErrWrongPassword     = errors.New("wrong password")
)

type AuthAthleteRepository interface {
	Create(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error)
	FindByContact(ctx context.Context, contact string) (domain.Athlete, error)
}

type AuthInstitutionRepository interface {
	Create(ctx context.Context, institution domain.Institution) (domain.Institution, error)
	FindByContact(ctx context.Context, contact string) (domain.Institution, error)
}

type AuthService struct {
	athletes     AuthAthleteRepository
	institutions AuthInstitutionRepository
}

func NewAuthService(athletes AuthAthleteRepository, institutions AuthInstitutionRepository) *AuthService {
	return &AuthService{
		athletes:     athletes,
		institutions: institutions,
	}
}

func (s *AuthService) RegisterAthlete(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	if err := s.checkAthleteContactExists(ctx, athlete.Contact); err != nil {
		return domain.Athlete{}, err
	}

	hashed, err := hashPassword(athlete.Password)
	if err != nil {
		return domain.Athlete{}, err
	}
	athlete.Password = hashed

	created, err := s.athletes.Create(ctx, athlete)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("s.athletes.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) LoginAthlete(ctx context.Context, contact, password string) (domain.Athlete, error) {
	athlete, err := s.athletes.FindByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, repository.ErrAthleteNotFound) {
			return domain.Athlete{}, ErrAthleteNotFound
		}

		return domain.Athlete{}, fmt.Errorf("s.athletes.FindByContact -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(athlete.Password), []byte(password)); err != nil {
		return domain.Athlete{}, ErrWrongPassword
	}

	return athlete, nil
}

func (s *AuthService) RegisterInstitution(ctx context.Context, institution domain.Institution) (domain.Institution, error) {
	if err := s.checkInstitutionContactExists(ctx, institution.Contact); err != nil {
		return domain.Institution{}, err
	}

	hashed, err := hashPassword(institution.Password)
	if err != nil {
		return domain.Institution{}, err
	}
	institution.Password = hashed

	created, err := s.institutions.Create(ctx, institution)
	if err != nil {
		return domain.Institution{}, fmt.Errorf("s.institutions.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) LoginInstitution(ctx context.Context, contact, password string) (domain.Institution, error) {
	institution, err := s.institutions.FindByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return domain.Institution{}, ErrInstitutionNotFound
		}

		return domain.Institution{}, fmt.Errorf("s.institutions.FindByContact -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(institution.Password), []byte(password)); err != nil {
		return domain.Institution{}, ErrWrongPassword
	}

	return institution, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) checkAthleteContactExists(ctx context.Context, contact string) error {
	_, err := s.athletes.FindByContact(ctx, contact)
	if err == nil {
		return ErrAthleteExists
	}
	if !errors.Is(err, repository.ErrAthleteNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) checkInstitutionContactExists(ctx context.Context, contact string) error {
	_, err := s.institutions.FindByContact(ctx, contact)
	if err == nil {
		return ErrInstitutionExists
	}
	if !errors.Is(err, repository.ErrInstitutionNotFound) {
		return err
	}
	return nil
}
