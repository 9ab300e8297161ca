package entity

import "time"

// Warehouse representa un almacén donde se guardan productos.
// Los productos lo referencian; no es dueño de su ciclo de vida (ver guarda de borrado).
type Warehouse struct {
	ID              int64
	Name            string // único (comparación normalizada, case-insensitive)
	LocationDetails string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
