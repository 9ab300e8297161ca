package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/application/usecase"
	"github.com/tuempresa/gestion-inventario/internal/domain"
	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
)

func newWarehouseUC() (*usecase.WarehouseUseCase, *fakeWarehouseRepo, *fakeProductRepo) {
	whRepo := &fakeWarehouseRepo{}
	prodRepo := &fakeProductRepo{}
	return usecase.NewWarehouseUseCase(whRepo, prodRepo), whRepo, prodRepo
}

func TestWarehouseCreate(t *testing.T) {
	uc, _, _ := newWarehouseUC()

	out, err := uc.Create(dto.WarehousePayload{Name: "Principal", LocationDetails: "Calle 1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Principal", out.Name)
	assert.Equal(t, "Calle 1", out.LocationDetails)
}

func TestWarehouseCreateBlankName(t *testing.T) {
	uc, _, _ := newWarehouseUC()

	_, err := uc.Create(dto.WarehousePayload{Name: " "})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestWarehouseCreateDuplicate(t *testing.T) {
	uc, _, _ := newWarehouseUC()
	_, err := uc.Create(dto.WarehousePayload{Name: "Principal"})
	require.NoError(t, err)

	_, err = uc.Create(dto.WarehousePayload{Name: "principal"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestWarehouseGetByName(t *testing.T) {
	uc, _, _ := newWarehouseUC()
	_, err := uc.Create(dto.WarehousePayload{Name: "Norte"})
	require.NoError(t, err)

	out, err := uc.GetByName("Norte")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Norte", out.Name)

	missing, err := uc.GetByName("Sur")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = uc.GetByName("   ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestWarehouseUpdateSelfCollisionExempt(t *testing.T) {
	uc, _, _ := newWarehouseUC()
	created, err := uc.Create(dto.WarehousePayload{Name: "Principal", LocationDetails: "Calle 1"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.WarehousePayload{Name: "PRINCIPAL", LocationDetails: "Calle 2"})
	require.NoError(t, err)
	assert.Equal(t, "PRINCIPAL", out.Name)
	assert.Equal(t, "Calle 2", out.LocationDetails)
}

func TestWarehouseUpdateCollision(t *testing.T) {
	uc, _, _ := newWarehouseUC()
	_, err := uc.Create(dto.WarehousePayload{Name: "Principal"})
	require.NoError(t, err)
	second, err := uc.Create(dto.WarehousePayload{Name: "Norte"})
	require.NoError(t, err)

	_, err = uc.Update(second.ID, dto.WarehousePayload{Name: "principal"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestWarehouseUpdateNotFound(t *testing.T) {
	uc, _, _ := newWarehouseUC()

	out, err := uc.Update(7, dto.WarehousePayload{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWarehouseDeleteGuard(t *testing.T) {
	uc, whRepo, prodRepo := newWarehouseUC()
	created, err := uc.Create(dto.WarehousePayload{Name: "Principal"})
	require.NoError(t, err)

	// Un producto referencia el almacén: el borrado debe fallar citando el conteo
	// y el almacén debe seguir existiendo (todo o nada, sin cascada).
	require.NoError(t, prodRepo.Create(&entity.Product{
		Name: "Widget", Price: decimal.NewFromInt(5), Quantity: 10, WarehouseID: created.ID,
	}))

	deleted, err := uc.Delete(created.ID)
	require.Error(t, err)
	assert.False(t, deleted)
	assert.True(t, domain.IsConflict(err))
	assert.Contains(t, err.Error(), "1 producto(s) asociado(s)")
	assert.Len(t, whRepo.items, 1)

	// Sin productos referenciándolo, el borrado siempre procede.
	require.NoError(t, prodRepo.Delete(1))
	deleted, err = uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, whRepo.items)
}

func TestWarehouseDeleteNotFound(t *testing.T) {
	uc, _, _ := newWarehouseUC()

	deleted, err := uc.Delete(99)
	require.NoError(t, err)
	assert.False(t, deleted)
}
