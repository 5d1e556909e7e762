package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (req *CreateSupplierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
	)
}
