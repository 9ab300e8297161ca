package usecase

import (
	"strings"
	"time"

	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/domain"
	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

// WarehouseUseCase reglas de consistencia para almacenes: nombre único y guarda
// de borrado contra productos huérfanos.
type WarehouseUseCase struct {
	repo        repository.WarehouseRepository
	productRepo repository.ProductRepository
}

// NewWarehouseUseCase construye el caso de uso. productRepo se usa solo para la
// guarda de borrado (conteo de productos que referencian el almacén).
func NewWarehouseUseCase(repo repository.WarehouseRepository, productRepo repository.ProductRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, productRepo: productRepo}
}

// GetAll lista todos los almacenes.
func (uc *WarehouseUseCase) GetAll() ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// GetByID obtiene un almacén por ID. Devuelve (nil, nil) si no existe.
func (uc *WarehouseUseCase) GetByID(id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByName busca un almacén por nombre exacto (normalizado). Devuelve (nil, nil)
// si no hay coincidencia.
func (uc *WarehouseUseCase) GetByName(name string) (*dto.WarehouseResponse, error) {
	if !hasText(name) {
		return nil, domain.Validationf("El nombre del almacén es obligatorio.")
	}
	warehouse, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// Create crea un almacén con nombre único.
func (uc *WarehouseUseCase) Create(in dto.WarehousePayload) (*dto.WarehouseResponse, error) {
	if !hasText(in.Name) {
		return nil, domain.Validationf("El nombre del almacén es obligatorio.")
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("Ya existe un almacén con el nombre: %s", in.Name)
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		Name:            in.Name,
		LocationDetails: in.LocationDetails,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update renombra/reubica un almacén. El chequeo de unicidad se omite cuando el
// nombre normalizado no cambia. Devuelve (nil, nil) si no existe.
func (uc *WarehouseUseCase) Update(id int64, in dto.WarehousePayload) (*dto.WarehouseResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if !hasText(in.Name) {
		return nil, domain.Validationf("El nombre del almacén es obligatorio.")
	}
	if !strings.EqualFold(existing.Name, in.Name) {
		other, err := uc.repo.GetByName(in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.Conflictf("Ya existe otro almacén con el nombre: %s", in.Name)
		}
	}
	existing.Name = in.Name
	existing.LocationDetails = in.LocationDetails
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toWarehouseResponse(existing), nil
}

// Delete elimina un almacén si ningún producto lo referencia; el borrado es todo
// o nada, nunca cascada parcial. Devuelve false si el almacén no existe.
func (uc *WarehouseUseCase) Delete(id int64) (bool, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	count, err := uc.productRepo.CountByWarehouse(id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, domain.Conflictf(
			"No se puede eliminar el almacén '%s': %d producto(s) asociado(s)", existing.Name, count)
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:              w.ID,
		Name:            w.Name,
		LocationDetails: w.LocationDetails,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
