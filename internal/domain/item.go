package domain

import "time"

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

// Item is the master-data record for one tracked product.
// The SKU is the business key and is immutable after creation.
type Item struct {
	ID          string     `json:"id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	UOM         string     `json:"uom"` // unit of measure, e.g. "pcs", "kg"
	Description string     `json:"description"`
	Status      ItemStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ItemChanges carries the mutable fields of an item. ID and SKU are
// deliberately absent.
type ItemChanges struct {
	Name        string
	Category    string
	UOM         string
	Description string
	Status      ItemStatus
}
