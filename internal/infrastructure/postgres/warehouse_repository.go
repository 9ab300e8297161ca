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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para almacenes. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste un nuevo almacén y asigna su ID.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (name, location_details, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		warehouse.Name, warehouse.LocationDetails, warehouse.CreatedAt, warehouse.UpdatedAt,
	).Scan(&warehouse.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Ya existe un almacén con el nombre: %s", warehouse.Name)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén por ID.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, location_details, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.LocationDetails, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// GetByName obtiene un almacén por nombre normalizado (case-insensitive).
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, location_details, created_at, updated_at
		FROM warehouses WHERE LOWER(name) = LOWER($1)`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&w.ID, &w.Name, &w.LocationDetails, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by name: %w", err)
	}
	return &w, nil
}

// GetAll lista todos los almacenes.
func (r *WarehouseRepo) GetAll() ([]*entity.Warehouse, error) {
	query := `
		SELECT id, name, location_details, created_at, updated_at
		FROM warehouses ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.LocationDetails, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza un almacén existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, location_details = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.LocationDetails, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Ya existe otro almacén con el nombre: %s", warehouse.Name)
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// Delete elimina un almacén por ID.
func (r *WarehouseRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
