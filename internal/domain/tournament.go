package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tournament struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Division    string    `json:"division"`
	Stage       int       `json:"stage"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Winner      *string   `json:"winner,omitempty"`
	RunnerUp    *string   `json:"runnerup,omitempty"`
	WinnerScore int       `json:"winnerscore"`
	RunnerScore int       `json:"runnerscore"`
	Ongoing     bool      `json:"ongoing"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Archived is the spectator-facing inverse of Ongoing.
func (t Tournament) Archived() bool {
	return !t.Ongoing
}

// TournamentResults carries the data attached when a tournament is finalized.
type TournamentResults struct {
	Winner      string
	RunnerUp    string
	WinnerScore int
	RunnerScore int
}

// TournamentStatus is the athlete-facing view of an ongoing tournament,
// tagged with whether the athlete is currently eligible to participate.
type TournamentStatus struct {
	Tournament
	Eligible bool `json:"eligible"`
}
