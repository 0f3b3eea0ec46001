package entity

import "time"

// ActivityLogEntry entrada del journal generada por el sistema (solo lectura).
type ActivityLogEntry struct {
	ID           string
	UserID       *string
	UserFullName string
	Action       string
	Details      map[string]any
	CreatedAt    time.Time
}
