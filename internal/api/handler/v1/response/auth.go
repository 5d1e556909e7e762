package response

import "github.com/invtrack/inventory-ledger-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
