package repository

import "github.com/tuempresa/gestion-inventario/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
// Los Get* devuelven (nil, nil) cuando no hay registro.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id int64) (*entity.Role, error)
	// GetByName busca por nombre normalizado (case-insensitive).
	GetByName(name string) (*entity.Role, error)
	GetAll() ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id int64) error
}
