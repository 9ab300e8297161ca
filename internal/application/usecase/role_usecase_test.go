package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/application/usecase"
	"github.com/tuempresa/gestion-inventario/internal/domain"
)

func newRoleUC() (*usecase.RoleUseCase, *fakeRoleRepo) {
	repo := &fakeRoleRepo{}
	return usecase.NewRoleUseCase(repo), repo
}

func TestRoleCreate(t *testing.T) {
	uc, _ := newRoleUC()

	out, err := uc.Create(dto.RolePayload{Name: "ROLE_ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "ROLE_ADMIN", out.Name)
}

func TestRoleCreateBlankName(t *testing.T) {
	uc, _ := newRoleUC()

	_, err := uc.Create(dto.RolePayload{Name: "   "})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "El nombre del rol es obligatorio.", err.Error())
}

func TestRoleCreateDuplicateCaseInsensitive(t *testing.T) {
	uc, _ := newRoleUC()

	_, err := uc.Create(dto.RolePayload{Name: "ROLE_ADMIN"})
	require.NoError(t, err)

	// La comparación de unicidad es normalizada: cambiar el caso no evita el conflicto.
	_, err = uc.Create(dto.RolePayload{Name: "role_admin"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "role_admin")
}

func TestRoleGetByID(t *testing.T) {
	uc, _ := newRoleUC()
	created, err := uc.Create(dto.RolePayload{Name: "ROLE_USER"})
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "ROLE_USER", out.Name)

	missing, err := uc.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = uc.GetByID(0)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRoleRenameSelfCollisionExempt(t *testing.T) {
	uc, _ := newRoleUC()
	created, err := uc.Create(dto.RolePayload{Name: "ROLE_ADMIN"})
	require.NoError(t, err)

	// Renombrar a su propio nombre con otro caso no debe disparar el conflicto.
	out, err := uc.Update(created.ID, dto.RolePayload{Name: "Role_Admin"})
	require.NoError(t, err)
	assert.Equal(t, "Role_Admin", out.Name)
}

func TestRoleRenameCollision(t *testing.T) {
	uc, _ := newRoleUC()
	_, err := uc.Create(dto.RolePayload{Name: "ROLE_ADMIN"})
	require.NoError(t, err)
	second, err := uc.Create(dto.RolePayload{Name: "ROLE_USER"})
	require.NoError(t, err)

	_, err = uc.Update(second.ID, dto.RolePayload{Name: "role_admin"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "otro rol")
}

func TestRoleUpdateNotFound(t *testing.T) {
	uc, _ := newRoleUC()

	out, err := uc.Update(42, dto.RolePayload{Name: "ROLE_X"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRoleDelete(t *testing.T) {
	uc, repo := newRoleUC()
	created, err := uc.Create(dto.RolePayload{Name: "ROLE_TMP"})
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, repo.items)

	// Señal de "no encontrado", no un error.
	deleted, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = uc.Delete(-1)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
