package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateItemRequest struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	UOM         string `json:"uom"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SKU, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.UOM, validation.Required),
		validation.Field(&req.Status, validation.In("active", "inactive")),
	)
}

// UpdateItemRequest carries everything editable on an item. SKU is absent
// on purpose: it is immutable after creation.
type UpdateItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	UOM         string `json:"uom"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.UOM, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In("active", "inactive")),
	)
}
