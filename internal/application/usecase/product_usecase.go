package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/domain"
	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

// ProductUseCase reglas de consistencia para productos: validación de campos,
// resolución del almacén y el libro de stock (entrada/salida) con no-negatividad.
type ProductUseCase struct {
	repo          repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	tx            TxRunner
}

// NewProductUseCase construye el caso de uso. tx ejecuta las mutaciones de stock
// como unidad atómica (bloqueo de fila dentro de una transacción).
func NewProductUseCase(repo repository.ProductRepository, warehouseRepo repository.WarehouseRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, warehouseRepo: warehouseRepo, tx: tx}
}

// validateProductData precondición compartida por Create y Update.
func validateProductData(in dto.ProductPayload) error {
	if !hasText(in.Name) {
		return domain.Validationf("El nombre del producto es obligatorio.")
	}
	if in.Quantity == nil || *in.Quantity < 0 {
		return domain.Validationf("La cantidad no puede ser nula o negativa.")
	}
	if in.Price == nil || in.Price.LessThan(decimal.Zero) {
		return domain.Validationf("El precio no puede ser nulo o negativo.")
	}
	return nil
}

// resolveWarehouse valida y resuelve la referencia al almacén.
func (uc *ProductUseCase) resolveWarehouse(warehouseID int64, invalidIDMsg string) (*entity.Warehouse, error) {
	if warehouseID <= 0 {
		return nil, domain.Validationf("%s", invalidIDMsg)
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.Validationf("Almacén no encontrado con ID: %d", warehouseID)
	}
	return warehouse, nil
}

// GetAll lista todos los productos.
func (uc *ProductUseCase) GetAll() ([]dto.ProductResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("El ID del producto debe ser un número positivo.")
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un producto con su referencia de almacén resuelta.
func (uc *ProductUseCase) Create(in dto.ProductPayload, warehouseID int64) (*dto.ProductResponse, error) {
	if err := validateProductData(in); err != nil {
		return nil, err
	}
	warehouse, err := uc.resolveWarehouse(warehouseID,
		"El ID del almacén es obligatorio y debe ser positivo.")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		Category:    in.Category,
		WarehouseID: warehouse.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza todos los campos escalares y la referencia al almacén (el
// almacén es obligatorio también en la actualización). Devuelve (nil, nil) si
// el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.ProductPayload, warehouseID int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("El ID del producto a actualizar debe ser un número positivo.")
	}
	if err := validateProductData(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	warehouse, err := uc.resolveWarehouse(warehouseID,
		"El ID del almacén es obligatorio y debe ser positivo para la actualización.")
	if err != nil {
		return nil, err
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = *in.Price
	existing.Quantity = *in.Quantity
	existing.Category = in.Category
	existing.WarehouseID = warehouse.ID
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toProductResponse(existing), nil
}

// Delete elimina un producto por ID. Devuelve false si no existe.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	if id <= 0 {
		return false, domain.Validationf("El ID del producto a eliminar debe ser un número positivo.")
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

// RecordEntry registra una entrada de stock (quantity += quantityToAdd) dentro de
// una transacción con la fila del producto bloqueada. Devuelve (nil, nil) si el
// producto no existe.
func (uc *ProductUseCase) RecordEntry(ctx context.Context, productID, quantityToAdd int64) (*dto.ProductResponse, error) {
	if productID <= 0 {
		return nil, domain.Validationf("El ID del producto para registrar entrada debe ser un número positivo.")
	}
	if quantityToAdd <= 0 {
		return nil, domain.Validationf("La cantidad para registrar entrada debe ser positiva.")
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		product, err := products.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		product.Quantity += quantityToAdd
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecordExit registra una salida de stock (quantity -= quantityToSubtract) dentro
// de una transacción con la fila del producto bloqueada; el chequeo de suficiencia
// y la escritura son una sola unidad, dos salidas concurrentes no pueden dejar el
// stock negativo. Devuelve (nil, nil) si el producto no existe.
func (uc *ProductUseCase) RecordExit(ctx context.Context, productID, quantityToSubtract int64) (*dto.ProductResponse, error) {
	if productID <= 0 {
		return nil, domain.Validationf("El ID del producto para registrar salida debe ser un número positivo.")
	}
	if quantityToSubtract <= 0 {
		return nil, domain.Validationf("La cantidad para registrar salida debe ser positiva.")
	}
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(products repository.ProductRepository) error {
		product, err := products.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		if product.Quantity < quantityToSubtract {
			return domain.Validationf("Stock insuficiente (%d) para el producto: %s al intentar sacar %d",
				product.Quantity, product.Name, quantityToSubtract)
		}
		product.Quantity -= quantityToSubtract
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		WarehouseID: p.WarehouseID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
