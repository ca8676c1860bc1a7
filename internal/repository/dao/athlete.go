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
	ErrAthleteContactExists = errors.New("athlete already exists")
	ErrAthleteNotFound      = errors.New("athlete not found")
)

type Athlete struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name     string `gorm:"not null"`
	Age      int
	Gender   string
	Division string
	Contact  string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	PhotoURL string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AthleteDAO struct {
	db *gorm.DB
}

func NewAthleteDAO(db *gorm.DB) *AthleteDAO {
	return &AthleteDAO{
		db: db,
	}
}

func (d *AthleteDAO) Insert(ctx context.Context, athlete Athlete) (Athlete, error) {
	result := d.db.WithContext(ctx).Create(&athlete)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_athletes_contact") {
			return Athlete{}, ErrAthleteContactExists
		}

		return Athlete{}, result.Error
	}

	return athlete, nil
}

func (d *AthleteDAO) FindByID(ctx context.Context, id uuid.UUID) (Athlete, error) {
	var athlete Athlete

	result := d.db.WithContext(ctx).First(&athlete, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Athlete{}, ErrAthleteNotFound
		}

		return Athlete{}, result.Error
	}

	return athlete, nil
}

func (d *AthleteDAO) FindByContact(ctx context.Context, contact string) (Athlete, error) {
	var athlete Athlete

	result := d.db.WithContext(ctx).First(&athlete, "contact = ?", contact)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Athlete{}, ErrAthleteNotFound
		}

		return Athlete{}, result.Error
	}

	return athlete, nil
}

func (d *AthleteDAO) Update(ctx context.Context, athlete Athlete) (Athlete, error) {
	result := d.db.WithContext(ctx).Save(&athlete)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_athletes_contact") {
			return Athlete{}, ErrAthleteContactExists
		}

		return Athlete{}, result.Error
	}

	return athlete, nil
}
