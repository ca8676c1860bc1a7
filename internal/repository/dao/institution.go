package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrInstitutionContactExists = errors.New("institution already exists")
	ErrInstitutionNotFound      = errors.New("institution not found")
)

type Institution struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name     string `gorm:"not null"`
	Contact  string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type InstitutionDAO struct {
	db *gorm.DB
}

func NewInstitutionDAO(db *gorm.DB) *InstitutionDAO {
	return &InstitutionDAO{
		db: db,
	}
}

func (d *InstitutionDAO) Insert(ctx context.Context, institution Institution) (Institution, error) {
	result := d.db.WithContext(ctx).Create(&institution)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_institutions_contact") {
			return Institution{}, ErrInstitutionContactExists
		}

		return Institution{}, result.Error
	}

	return institution, nil
}

func (d *InstitutionDAO) FindByID(ctx context.Context, id uuid.UUID) (Institution, error) {
	var institution Institution

	result := d.db.WithContext(ctx).First(&institution, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Institution{}, ErrInstitutionNotFound
		}

		return Institution{}, result.Error
	}

	return institution, nil
}

func (d *InstitutionDAO) FindByContact(ctx context.Context, contact string) (Institution, error) {
	var institution Institution

	result := d.db.WithContext(ctx).First(&institution, "contact = ?", contact)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Institution{}, ErrInstitutionNotFound
		}

		return Institution{}, result.Error
	}

	return institution, nil
}

func (d *InstitutionDAO) SearchByName(ctx context.Context, name string) ([]Institution, error) {
	var institutions []Institution

	result := d.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("name").
		Find(&institutions)
	if result.Error != nil {
		return nil, result.Error
	}

	return institutions, nil
}

func (d *InstitutionDAO) Update(ctx context.Context, institution Institution) (Institution, error) {
	result := d.db.WithContext(ctx).Save(&institution)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_institutions_contact") {
			return Institution{}, ErrInstitutionContactExists
		}

		return Institution{}, result.Error
	}

	return institution, nil
}
