package repository

import "github.com/tuempresa/gestion-inventario/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get* devuelven (nil, nil) cuando no hay registro.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	// CountByWarehouse cuenta los productos que referencian un almacén
	// (guarda de borrado de Warehouse).
	CountByWarehouse(warehouseID int64) (int64, error)
}
