package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEndBeforeStart = errors.New("end_date must not be before start_date")

type CreateTournamentRequest struct {
	Name      string    `json:"name"`
	Division  string    `json:"division"`
	Stage     int       `json:"stage"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (req *CreateTournamentRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Division, validation.Required),
		validation.Field(&req.Stage, validation.Min(1)),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.EndDate.Before(req.StartDate) {
		return errEndBeforeStart
	}

	return nil
}

type TournamentResultsRequest struct {
	Winner      string `json:"winner"`
	RunnerUp    string `json:"runnerup"`
	WinnerScore int    `json:"winnerscore"`
	RunnerScore int    `json:"runnerscore"`
}

func (req *TournamentResultsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Winner, validation.Required),
		validation.Field(&req.RunnerUp, validation.Required),
		validation.Field(&req.WinnerScore, validation.Min(0)),
		validation.Field(&req.RunnerScore, validation.Min(0)),
	)
}
