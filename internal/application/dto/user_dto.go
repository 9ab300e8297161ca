package dto

import "time"

// CreateUserRequest entrada para crear un usuario. Enabled omitido equivale a true.
// Los roleIds viajan como parámetro aparte, no en el cuerpo.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Enabled  *bool  `json:"enabled"`
}

// UpdateUserRequest entrada para actualizar un usuario.
// Password vacío significa "mantener la actual". Email vacío BORRA el email
// almacenado (no hay forma de decir "dejarlo igual"). Enabled siempre sobreescribe.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Enabled  bool   `json:"enabled"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña.
type UserResponse struct {
	ID        int64          `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Enabled   bool           `json:"enabled"`
	Roles     []RoleResponse `json:"roles"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
