package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuempresa/gestion-inventario/internal/domain"
	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Usa el pool directamente porque Create/Update escriben users y user_roles en
// una misma transacción.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste el usuario y su relación de roles en una transacción.
func (r *UserRepo) Create(user *entity.User) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO users (username, password, email, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = tx.QueryRow(ctx, query,
		user.Username, user.Password, user.Email, user.Enabled, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("El nombre de usuario ya está en uso: %s", user.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if err := insertUserRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update sobreescribe el usuario y reemplaza su relación de roles en una transacción.
func (r *UserRepo) Update(user *entity.User) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE users SET username = $2, password = $3, email = $4, enabled = $5, updated_at = $6
		WHERE id = $1`
	if _, err := tx.Exec(ctx, query,
		user.ID, user.Username, user.Password, user.Email, user.Enabled, user.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("El nuevo nombre de usuario ya está en uso: %s", user.Username)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, user.ID); err != nil {
		return fmt.Errorf("clear user roles: %w", err)
	}
	if err := insertUserRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertUserRoles(ctx context.Context, tx pgx.Tx, userID int64, roles []entity.Role) error {
	for _, role := range roles {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, role.ID,
		); err != nil {
			return fmt.Errorf("insert user role: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un usuario por ID con sus roles cargados.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, username, password, email, enabled, created_at, updated_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Username, &u.Password, &u.Email, &u.Enabled, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	roles, err := r.loadRoles(u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

// GetAll lista todos los usuarios con sus roles cargados.
func (r *UserRepo) GetAll() ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, username, password, email, enabled, created_at, updated_at
		FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Enabled, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range list {
		roles, err := r.loadRoles(u.ID)
		if err != nil {
			return nil, err
		}
		u.Roles = roles
	}
	return list, nil
}

func (r *UserRepo) loadRoles(userID int64) ([]entity.Role, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT r.id, r.name, r.created_at, r.updated_at
		FROM roles r JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1 ORDER BY r.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("load user roles: %w", err)
	}
	defer rows.Close()
	var roles []entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Delete elimina un usuario por ID. Las filas de user_roles caen en cascada (FK).
func (r *UserRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ExistsByUsername compara el username normalizado.
func (r *UserRepo) ExistsByUsername(username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by username: %w", err)
	}
	return exists, nil
}

// ExistsByEmail solo considera usuarios con email no vacío.
func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE email <> '' AND LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}
