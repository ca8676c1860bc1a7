package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UpdateInstitutionRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (req *UpdateInstitutionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Contact, validation.Required, is.Email),
	)
}
