package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/wushufed/tournament-backend/internal/domain"
)

// UpdateAthleteRequest carries a partial profile update. Absent fields stay
// untouched; each present field is validated on its own.
type UpdateAthleteRequest struct {
	Name     *string `json:"name,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Division *string `json:"division,omitempty"`
	Contact  *string `json:"contact,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (req *UpdateAthleteRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty),
		validation.Field(&req.Age, validation.Min(1), validation.Max(120)),
		validation.Field(&req.Gender, validation.NilOrNotEmpty),
		validation.Field(&req.Division, validation.NilOrNotEmpty),
		validation.Field(&req.Contact, validation.NilOrNotEmpty, is.Email),
	)
	if err != nil {
		return err
	}

	if req.Password != nil {
		matched, err := passwordExp.MatchString(*req.Password)
		if err != nil || !matched {
			return errInvalidPassword
		}
	}

	return nil
}

func (req *UpdateAthleteRequest) ToPatch() domain.AthletePatch {
	return domain.AthletePatch{
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		Division: req.Division,
		Contact:  req.Contact,
		Password: req.Password,
	}
}
