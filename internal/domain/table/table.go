package table

import "time"

const (
	StatusFree     = "FREE"
	StatusOccupied = "OCCUPIED"
)

type Table struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Label     string     `json:"label,omitempty"`
	Status    string     `json:"status"`
	OpenedAt  *time.Time `json:"opened_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
