package models

// Operation is a row of the operations table
type Operation struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Cost            float64   `json:"cost" db:"cost"`
	DurationMinutes int64     `json:"duration_minutes" db:"duration_minutes"`
	CreatedAt       Timestamp `json:"created_at" db:"created_at"`
	UpdatedAt       Timestamp `json:"updated_at" db:"updated_at"`
}
