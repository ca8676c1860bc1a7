package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrTournamentFinalized = errors.New("tournament already finalized")
)

type Tournament struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name     string `gorm:"not null"`
	Slug     string `gorm:"index"`
	Division string `gorm:"not null"`
	Stage    int    `gorm:"not null"`
	Location string `gorm:"not null"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	Winner      *string
	RunnerUp    *string
	WinnerScore int  `gorm:"default:0"`
	RunnerScore int  `gorm:"default:0"`
	Ongoing     bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TournamentDAO struct {
	db *gorm.DB
}

func NewTournamentDAO(db *gorm.DB) *TournamentDAO {
	return &TournamentDAO{
		db: db,
	}
}

func (d *TournamentDAO) Insert(ctx context.Context, tournament Tournament) (Tournament, error) {
	result := d.db.WithContext(ctx).Create(&tournament)
	if result.Error != nil {
		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) FindByID(ctx context.Context, id uuid.UUID) (Tournament, error) {
	var tournament Tournament

	result := d.db.WithContext(ctx).First(&tournament, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tournament{}, ErrTournamentNotFound
		}

		return Tournament{}, result.Error
	}

	return tournament, nil
}

func (d *TournamentDAO) FindAll(ctx context.Context) ([]Tournament, error) {
	var tournaments []Tournament

	result := d.db.WithContext(ctx).Order("start_date").Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

func (d *TournamentDAO) FindOngoing(ctx context.Context) ([]Tournament, error) {
	var tournaments []Tournament

	result := d.db.WithContext(ctx).
		Where("ongoing = ?", true).
		Order("start_date").
		Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

// FindOverdueOngoing returns tournaments still flagged ongoing whose end date
// has passed the given instant.
func (d *TournamentDAO) FindOverdueOngoing(ctx context.Context, before time.Time) ([]Tournament, error) {
	var tournaments []Tournament

	result := d.db.WithContext(ctx).
		Where("ongoing = ? AND end_date < ?", true, before).
		Order("end_date").
		Find(&tournaments)
	if result.Error != nil {
		return nil, result.Error
	}

	return tournaments, nil
}

// RecordResults attaches the final results and clears the ongoing flag in a
// single conditional update. Finalization is one-way: the update only matches
// rows still ongoing, so a second attempt cannot overwrite recorded results.
func (d *TournamentDAO) RecordResults(ctx context.Context, id uuid.UUID, winner, runnerUp string, winnerScore, runnerScore int) (Tournament, error) {
	result := d.db.WithContext(ctx).
		Model(&Tournament{}).
		Where("id = ? AND ongoing = ?", id, true).
		Updates(map[string]interface{}{
			"winner":       winner,
			"runner_up":    runnerUp,
			"winner_score": winnerScore,
			"runner_score": runnerScore,
			"ongoing":      false,
		})
	if result.Error != nil {
		return Tournament{}, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return Tournament{}, err
		}

		return Tournament{}, ErrTournamentFinalized
	}

	return d.FindByID(ctx, id)
}
