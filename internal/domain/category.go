package domain

import "time"

// Category groups posts. Mutations are admin-only.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
