package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RequestEndorsementRequest struct {
	AthleteID     string `json:"athlete_id"`
	InstitutionID string `json:"institution_id"`
	TournamentID  string `json:"tournament_id"`
}

func (req *RequestEndorsementRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AthleteID, validation.Required, is.UUIDv4),
		validation.Field(&req.InstitutionID, validation.Required, is.UUIDv4),
		validation.Field(&req.TournamentID, validation.Required, is.UUIDv4),
	)
}

type ReviewEndorsementRequest struct {
	Approve *bool `json:"approve"`
}

func (req *ReviewEndorsementRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Approve, validation.NotNil),
	)
}
