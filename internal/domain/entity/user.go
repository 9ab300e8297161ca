package entity

import "time"

// User representa un usuario del sistema con un conjunto de roles asignados.
// Password se almacena tal como llega (el hasheo es responsabilidad de un colaborador
// externo) y nunca se devuelve a los callers.
type User struct {
	ID        int64
	Username  string // único, 3-50 caracteres
	Password  string
	Email     string // opcional; único entre usuarios con email no vacío
	Enabled   bool
	Roles     []Role // conjunto sin orden ni duplicados
	CreatedAt time.Time
	UpdatedAt time.Time
}
