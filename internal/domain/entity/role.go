package entity

import "time"

// Role representa un rol asignable a usuarios (ej. ROLE_ADMIN).
type Role struct {
	ID        int64
	Name      string // único (comparación case-insensitive)
	CreatedAt time.Time
	UpdatedAt time.Time
}
