package usecase

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/domain"
	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

// Patrón simple de email: parte-local@dominio.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// UserUseCase reglas de consistencia para usuarios: unicidad de username/email,
// política de contraseña y resolución del conjunto de roles.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo}
}

func validateUserData(username, password, email string, isCreate bool) error {
	if !hasText(username) {
		return domain.Validationf("El nombre de usuario es obligatorio.")
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return domain.Validationf("El nombre de usuario debe tener entre 3 y 50 caracteres.")
	}
	if hasText(email) && !emailPattern.MatchString(email) {
		return domain.Validationf("Formato de email inválido.")
	}
	if isCreate {
		if !hasText(password) {
			return domain.Validationf("La contraseña es obligatoria al crear un usuario.")
		}
		if utf8.RuneCountInString(password) < 6 {
			return domain.Validationf("La contraseña debe tener al menos 6 caracteres.")
		}
	} else if hasText(password) && utf8.RuneCountInString(password) < 6 {
		return domain.Validationf("La nueva contraseña debe tener al menos 6 caracteres.")
	}
	return nil
}

// resolveRoles resuelve cada roleID contra el repositorio y devuelve el conjunto
// asignado (sin duplicados). Cualquier ID no positivo o no resuelto es un
// ValidationError que cita el ID ofensor.
func (uc *UserUseCase) resolveRoles(roleIDs []int64) ([]entity.Role, error) {
	assigned := make([]entity.Role, 0, len(roleIDs))
	seen := make(map[int64]struct{}, len(roleIDs))
	for _, roleID := range roleIDs {
		if roleID <= 0 {
			return nil, domain.Validationf("El ID del rol proporcionado es inválido.")
		}
		if _, ok := seen[roleID]; ok {
			continue
		}
		role, err := uc.roleRepo.GetByID(roleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.Validationf("Rol no encontrado con ID: %d", roleID)
		}
		seen[roleID] = struct{}{}
		assigned = append(assigned, *role)
	}
	return assigned, nil
}

// GetAll lista todos los usuarios (sin contraseñas).
func (uc *UserUseCase) GetAll() ([]dto.UserResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("El ID del usuario debe ser un número positivo.")
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Create crea un usuario con su conjunto de roles resuelto. La contraseña se
// almacena tal como llega (el hasheo es un colaborador externo) y nunca se
// devuelve al caller.
func (uc *UserUseCase) Create(in dto.CreateUserRequest, roleIDs []int64) (*dto.UserResponse, error) {
	if err := validateUserData(in.Username, in.Password, in.Email, true); err != nil {
		return nil, err
	}
	taken, err := uc.repo.ExistsByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("El nombre de usuario ya está en uso: %s", in.Username)
	}
	if hasText(in.Email) {
		emailTaken, err := uc.repo.ExistsByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if emailTaken {
			return nil, domain.Conflictf("El email ya está en uso: %s", in.Email)
		}
	}
	roles, err := uc.resolveRoles(roleIDs)
	if err != nil {
		return nil, err
	}
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	now := time.Now()
	user := &entity.User{
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		Enabled:   enabled,
		Roles:     roles,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario existente. Devuelve (nil, nil) si no existe.
//   - Username: chequeo de unicidad solo si cambia (case-insensitive, auto-exento).
//   - Email: vacío BORRA el email almacenado; presente y distinto exige unicidad.
//   - Password: vacía mantiene la actual.
//   - Roles: roleIDs nil no toca los roles; un slice vacío los quita todos.
//   - Enabled: siempre se sobreescribe.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest, roleIDs *[]int64) (*dto.UserResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("El ID del usuario a actualizar debe ser un número positivo.")
	}
	if err := validateUserData(in.Username, in.Password, in.Email, false); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if !strings.EqualFold(existing.Username, in.Username) {
		taken, err := uc.repo.ExistsByUsername(in.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.Conflictf("El nuevo nombre de usuario ya está en uso: %s", in.Username)
		}
	}
	existing.Username = in.Username

	if hasText(in.Email) {
		if existing.Email == "" || !strings.EqualFold(existing.Email, in.Email) {
			emailTaken, err := uc.repo.ExistsByEmail(in.Email)
			if err != nil {
				return nil, err
			}
			if emailTaken {
				return nil, domain.Conflictf("El nuevo email ya está en uso: %s", in.Email)
			}
		}
		existing.Email = in.Email
	} else {
		// Email vacío en el payload borra el almacenado (clear-on-blank heredado).
		existing.Email = ""
	}

	if hasText(in.Password) {
		existing.Password = in.Password
	}

	if roleIDs != nil {
		roles, err := uc.resolveRoles(*roleIDs)
		if err != nil {
			return nil, err
		}
		existing.Roles = roles
	}

	existing.Enabled = in.Enabled
	existing.UpdatedAt = time.Now()
	if err := uc.repo.Update(existing); err != nil {
		return nil, err
	}
	return toUserResponse(existing), nil
}

// Delete elimina un usuario por ID. Devuelve false si no existe.
func (uc *UserUseCase) Delete(id int64) (bool, error) {
	if id <= 0 {
		return false, domain.Validationf("El ID del usuario a eliminar debe ser un número positivo.")
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

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	roles := make([]dto.RoleResponse, 0, len(u.Roles))
	for i := range u.Roles {
		roles = append(roles, *toRoleResponse(&u.Roles[i]))
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Enabled:   u.Enabled,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
