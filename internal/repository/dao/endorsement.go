package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEndorsementNotFound = errors.New("endorsement not found")
	ErrEndorsementReviewed = errors.New("endorsement already reviewed")
)

type Endorsement struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	AthleteID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	Athlete       Athlete     `gorm:"foreignKey:AthleteID"`
	InstitutionID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Institution   Institution `gorm:"foreignKey:InstitutionID"`
	TournamentID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Tournament    Tournament  `gorm:"foreignKey:TournamentID"`

	Reviewed bool `gorm:"not null;default:false"`
	Approved bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EndorsementDAO struct {
	db *gorm.DB
}

func NewEndorsementDAO(db *gorm.DB) *EndorsementDAO {
	return &EndorsementDAO{
		db: db,
	}
}

func (d *EndorsementDAO) Insert(ctx context.Context, endorsement Endorsement) (Endorsement, error) {
	result := d.db.WithContext(ctx).Create(&endorsement)
	if result.Error != nil {
		return Endorsement{}, result.Error
	}

	return endorsement, nil
}

func (d *EndorsementDAO) FindByID(ctx context.Context, id uuid.UUID) (Endorsement, error) {
	var endorsement Endorsement

	result := d.db.WithContext(ctx).First(&endorsement, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Endorsement{}, ErrEndorsementNotFound
		}

		return Endorsement{}, result.Error
	}

	return endorsement, nil
}

// FindPendingByInstitution loads the unreviewed requests addressed to an
// institution with the requesting athlete and target tournament attached.
func (d *EndorsementDAO) FindPendingByInstitution(ctx context.Context, institutionID uuid.UUID) ([]Endorsement, error) {
	var endorsements []Endorsement

	result := d.db.WithContext(ctx).
		Preload("Athlete").
		Preload("Tournament").
		Where("institution_id = ? AND reviewed = ?", institutionID, false).
		Order("created_at").
		Find(&endorsements)
	if result.Error != nil {
		return nil, result.Error
	}

	return endorsements, nil
}

// MarkReviewed moves a pending endorsement to its terminal state. Both flags
// change in one conditional update scoped to unreviewed rows, so the
// approved-implies-reviewed invariant holds and the first reviewer wins.
func (d *EndorsementDAO) MarkReviewed(ctx context.Context, id uuid.UUID, approve bool) (Endorsement, error) {
	result := d.db.WithContext(ctx).
		Model(&Endorsement{}).
		Where("id = ? AND reviewed = ?", id, false).
		Updates(map[string]interface{}{
			"reviewed": true,
			"approved": approve,
		})
	if result.Error != nil {
		return Endorsement{}, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return Endorsement{}, err
		}

		return Endorsement{}, ErrEndorsementReviewed
	}

	return d.FindByID(ctx, id)
}

func (d *EndorsementDAO) CountApprovedByAthlete(ctx context.Context, athleteID uuid.UUID) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Endorsement{}).
		Where("athlete_id = ? AND approved = ?", athleteID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// FindLatestForPair returns the endorsement governing an (athlete, tournament)
// pair. Duplicate requests are possible; the most recently created row wins,
// with the id as a tie-break for rows created in the same instant.
func (d *EndorsementDAO) FindLatestForPair(ctx context.Context, athleteID, tournamentID uuid.UUID) (Endorsement, error) {
	var endorsement Endorsement

	result := d.db.WithContext(ctx).
		Where("athlete_id = ? AND tournament_id = ?", athleteID, tournamentID).
		Order("created_at DESC, id DESC").
		First(&endorsement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Endorsement{}, ErrEndorsementNotFound
		}

		return Endorsement{}, result.Error
	}

	return endorsement, nil
}

// FindApprovedAthletes returns the distinct athletes holding an approved
// endorsement from the institution for a tournament still ongoing.
func (d *EndorsementDAO) FindApprovedAthletes(ctx context.Context, institutionID uuid.UUID) ([]Athlete, error) {
	var athletes []Athlete

	result := d.db.WithContext(ctx).
		Model(&Athlete{}).
		Distinct("athletes.*").
		Joins("JOIN endorsements ON endorsements.athlete_id = athletes.id").
		Joins("JOIN tournaments ON tournaments.id = endorsements.tournament_id").
		Where("endorsements.institution_id = ? AND endorsements.approved = ? AND tournaments.ongoing = ?",
			institutionID, true, true).
		Find(&athletes)
	if result.Error != nil {
		return nil, result.Error
	}

	return athletes, nil
}
