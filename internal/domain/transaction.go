package domain

import "time"

type TransactionType string

const (
	TransactionReceipt    TransactionType = "RECEIPT"
	TransactionIssue      TransactionType = "ISSUE"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionReceipt, TransactionIssue, TransactionAdjustment:
		return true
	}
	return false
}

// Transaction is one immutable entry in the stock ledger. Once committed it
// is never edited or removed; corrections are made with a counter-transaction.
// Delta is the signed change applied to stock: positive for receipts and
// upward adjustments, negative for issues and downward adjustments.
type Transaction struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Type      TransactionType `json:"type"`
	Delta     int             `json:"delta"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name"` // display-name snapshot at commit time
}
