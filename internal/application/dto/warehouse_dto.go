package dto

import "time"

// WarehousePayload entrada para crear o actualizar un almacén (reemplazo completo).
type WarehousePayload struct {
	Name            string `json:"name"`
	LocationDetails string `json:"location_details"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	LocationDetails string    `json:"location_details"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
