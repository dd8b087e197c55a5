package models

// Material is a row of the materials table
type Material struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Unit          string    `json:"unit" db:"unit"`
	PricePerUnit  float64   `json:"price_per_unit" db:"price_per_unit"`
	StockQuantity float64   `json:"stock_quantity" db:"stock_quantity"`
	CreatedAt     Timestamp `json:"created_at" db:"created_at"`
	UpdatedAt     Timestamp `json:"updated_at" db:"updated_at"`
}
