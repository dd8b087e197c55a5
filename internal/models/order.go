package models

// Order is a row of the orders table
type Order struct {
	ID           int64     `json:"id" db:"id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	Description  string    `json:"description" db:"description"`
	Status       string    `json:"status" db:"status"`
	TotalCost    float64   `json:"total_cost" db:"total_cost"`
	Deadline     Date      `json:"deadline" db:"deadline"`
	CreatedAt    Timestamp `json:"created_at" db:"created_at"`
	UpdatedAt    Timestamp `json:"updated_at" db:"updated_at"`
}
