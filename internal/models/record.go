package models

// Record is a row of the generic records table
type Record struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   Timestamp `json:"created_at" db:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at" db:"updated_at"`
}
