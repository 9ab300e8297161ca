package dto

import "time"

// RolePayload entrada para crear o renombrar un rol.
type RolePayload struct {
	Name string `json:"name"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
