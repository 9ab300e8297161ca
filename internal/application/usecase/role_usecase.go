package usecase

import (
	"strings"
	"time"

	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/domain"
	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

// RoleUseCase reglas de consistencia para roles: nombre único (case-insensitive).
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

func validateRoleData(in dto.RolePayload) error {
	if !hasText(in.Name) {
		return domain.Validationf("El nombre del rol es obligatorio.")
	}
	return nil
}

// GetAll lista todos los roles.
func (uc *RoleUseCase) GetAll() ([]dto.RoleResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return items, nil
}

// GetByID obtiene un rol por ID. Devuelve (nil, nil) si no existe.
func (uc *RoleUseCase) GetByID(id int64) (*dto.RoleResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("El ID del rol debe ser un número positivo.")
	}
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// Create crea un rol con nombre único.
func (uc *RoleUseCase) Create(in dto.RolePayload) (*dto.RoleResponse, error) {
	if err := validateRoleData(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("Ya existe un rol con el nombre: %s", in.Name)
	}
	now := time.Now()
	role := &entity.Role{
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Update renombra un rol. Si el nombre normalizado no cambia se omite el chequeo
// de unicidad (la auto-colisión no es un error). Devuelve (nil, nil) si no existe.
func (uc *RoleUseCase) Update(id int64, in dto.RolePayload) (*dto.RoleResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("El ID del rol a actualizar debe ser un número positivo.")
	}
	if err := validateRoleData(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if !strings.EqualFold(existing.Name, in.Name) {
		other, err := uc.repo.GetByName(in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.Conflictf("Ya existe otro rol con el nombre: %s", in.Name)
		}
	}
	existing.Name = in.Name
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toRoleResponse(existing), nil
}

// Delete elimina un rol por ID. Devuelve false si no existe.
// No hay guarda referencial contra roles en uso: la relación user_roles se limpia
// en cascada (ver migración).
func (uc *RoleUseCase) Delete(id int64) (bool, error) {
	if id <= 0 {
		return false, domain.Validationf("El ID del rol a eliminar debe ser un número positivo.")
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

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
