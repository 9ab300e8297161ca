package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tuempresa/gestion-inventario/internal/domain"
	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol y asigna su ID.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (name, created_at, updated_at)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		role.Name, role.CreatedAt, role.UpdatedAt,
	).Scan(&role.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Ya existe un rol con el nombre: %s", role.Name)
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id int64) (*entity.Role, error) {
	query := `SELECT id, name, created_at, updated_at FROM roles WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// GetByName obtiene un rol por nombre normalizado (case-insensitive).
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	query := `SELECT id, name, created_at, updated_at FROM roles WHERE LOWER(name) = LOWER($1)`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// GetAll lista todos los roles.
func (r *RoleRepo) GetAll() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update actualiza un rol existente.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `UPDATE roles SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Ya existe otro rol con el nombre: %s", role.Name)
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina un rol por ID. Las filas de user_roles caen en cascada (FK).
func (r *RoleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
