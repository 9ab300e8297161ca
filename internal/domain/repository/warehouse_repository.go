package repository

import "github.com/tuempresa/gestion-inventario/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Los Get* devuelven (nil, nil) cuando no hay registro.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	// GetByName busca por nombre normalizado (case-insensitive).
	GetByName(name string) (*entity.Warehouse, error)
	GetAll() ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id int64) error
}
