package repository

import "github.com/tuempresa/gestion-inventario/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create y Update persisten también la relación user_roles (reemplazo completo).
// Los Get* devuelven (nil, nil) cuando no hay registro; siempre cargan los roles.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetAll() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
	// ExistsByUsername compara el username normalizado (case-insensitive).
	ExistsByUsername(username string) (bool, error)
	// ExistsByEmail solo considera usuarios con email no vacío.
	ExistsByEmail(email string) (bool, error)
}
