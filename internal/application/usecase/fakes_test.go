package usecase_test

import (
	"context"
	"strings"

	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

// Repositorios en memoria para probar los casos de uso sin base de datos.
// Guardan copias, como haría un adaptador real: mutar lo devuelto por GetByID
// no cambia nada hasta llamar a Update.

type fakeWarehouseRepo struct {
	seq   int64
	items []entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	f.seq++
	w.ID = f.seq
	f.items = append(f.items, *w)
	return nil
}

func (f *fakeWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			w := f.items[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for i := range f.items {
		if strings.EqualFold(f.items[i].Name, name) {
			w := f.items[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) GetAll() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(f.items))
	for i := range f.items {
		w := f.items[i]
		out = append(out, &w)
	}
	return out, nil
}

func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	for i := range f.items {
		if f.items[i].ID == w.ID {
			f.items[i] = *w
		}
	}
	return nil
}

func (f *fakeWarehouseRepo) Delete(id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeProductRepo struct {
	seq   int64
	items []entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.seq++
	p.ID = f.seq
	f.items = append(f.items, *p)
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return f.GetByID(id)
}

func (f *fakeProductRepo) GetAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.items))
	for i := range f.items {
		p := f.items[i]
		out = append(out, &p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items[i] = *p
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeProductRepo) CountByWarehouse(warehouseID int64) (int64, error) {
	var n int64
	for i := range f.items {
		if f.items[i].WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

type fakeRoleRepo struct {
	seq   int64
	items []entity.Role
}

func (f *fakeRoleRepo) Create(r *entity.Role) error {
	f.seq++
	r.ID = f.seq
	f.items = append(f.items, *r)
	return nil
}

func (f *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			r := f.items[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for i := range f.items {
		if strings.EqualFold(f.items[i].Name, name) {
			r := f.items[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) GetAll() ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(f.items))
	for i := range f.items {
		r := f.items[i]
		out = append(out, &r)
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(r *entity.Role) error {
	for i := range f.items {
		if f.items[i].ID == r.ID {
			f.items[i] = *r
		}
	}
	return nil
}

func (f *fakeRoleRepo) Delete(id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUserRepo struct {
	seq   int64
	items []entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.seq++
	u.ID = f.seq
	f.items = append(f.items, *u)
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			u := f.items[i]
			u.Roles = append([]entity.Role(nil), f.items[i].Roles...)
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.items))
	for i := range f.items {
		u := f.items[i]
		out = append(out, &u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i := range f.items {
		if f.items[i].ID == u.ID {
			f.items[i] = *u
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	for i := range f.items {
		if strings.EqualFold(f.items[i].Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	for i := range f.items {
		if f.items[i].Email != "" && strings.EqualFold(f.items[i].Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// fakeTxRunner ejecuta el callback directamente contra el repositorio en memoria
// (los tests son de un solo hilo; la atomicidad real la prueba el adaptador pgx).
type fakeTxRunner struct {
	products repository.ProductRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(products repository.ProductRepository) error) error {
	return fn(f.products)
}
