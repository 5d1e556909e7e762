package domain

import "time"

// StockLevel is the current on-hand quantity for one item. It is derived
// state: at all times Quantity equals the sum of the item's transaction
// deltas, and only a committed transaction may change it.
type StockLevel struct {
	ItemID    string    `json:"item_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStockItem pairs an item with its on-hand quantity for low-stock reports.
type LowStockItem struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// DashboardStats are the headline numbers shown on the dashboard.
type DashboardStats struct {
	ItemCount     int64 `json:"item_count"`
	SupplierCount int64 `json:"supplier_count"`
	TotalUnits    int64 `json:"total_units"`
	LowStockCount int64 `json:"low_stock_count"`
}
