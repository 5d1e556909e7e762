package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CommitTransactionRequest asks the ledger to apply one stock change.
// Quantity semantics depend on the type: a positive magnitude for RECEIPT
// and ISSUE, a signed delta for ADJUSTMENT. The magnitude rules themselves
// are enforced by the ledger engine, not here.
type CommitTransactionRequest struct {
	ItemID    string `json:"item_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reference string `json:"reference"`
}

func (req *CommitTransactionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("RECEIPT", "ISSUE", "ADJUSTMENT")),
		validation.Field(&req.Reference, validation.Required, validation.Length(1, 500)),
	)
}
