package http_test

import (
	"context"
	"strings"

	"github.com/tuempresa/gestion-inventario/internal/domain/entity"
	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

// Repositorios en memoria para levantar la app completa sin base de datos.

type memWarehouseRepo struct {
	seq   int64
	items []entity.Warehouse
}

func (m *memWarehouseRepo) Create(w *entity.Warehouse) error {
	m.seq++
	w.ID = m.seq
	m.items = append(m.items, *w)
	return nil
}

func (m *memWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			w := m.items[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (m *memWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for i := range m.items {
		if strings.EqualFold(m.items[i].Name, name) {
			w := m.items[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (m *memWarehouseRepo) GetAll() ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(m.items))
	for i := range m.items {
		w := m.items[i]
		out = append(out, &w)
	}
	return out, nil
}

func (m *memWarehouseRepo) Update(w *entity.Warehouse) error {
	for i := range m.items {
		if m.items[i].ID == w.ID {
			m.items[i] = *w
		}
	}
	return nil
}

func (m *memWarehouseRepo) Delete(id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

type memProductRepo struct {
	seq   int64
	items []entity.Product
}

func (m *memProductRepo) Create(p *entity.Product) error {
	m.seq++
	p.ID = m.seq
	m.items = append(m.items, *p)
	return nil
}

func (m *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			p := m.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return m.GetByID(id)
}

func (m *memProductRepo) GetAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.items))
	for i := range m.items {
		p := m.items[i]
		out = append(out, &p)
	}
	return out, nil
}

func (m *memProductRepo) Update(p *entity.Product) error {
	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i] = *p
		}
	}
	return nil
}

func (m *memProductRepo) Delete(id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memProductRepo) CountByWarehouse(warehouseID int64) (int64, error) {
	var n int64
	for i := range m.items {
		if m.items[i].WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

type memRoleRepo struct {
	seq   int64
	items []entity.Role
}

func (m *memRoleRepo) Create(r *entity.Role) error {
	m.seq++
	r.ID = m.seq
	m.items = append(m.items, *r)
	return nil
}

func (m *memRoleRepo) GetByID(id int64) (*entity.Role, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			r := m.items[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memRoleRepo) GetByName(name string) (*entity.Role, error) {
	for i := range m.items {
		if strings.EqualFold(m.items[i].Name, name) {
			r := m.items[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memRoleRepo) GetAll() ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(m.items))
	for i := range m.items {
		r := m.items[i]
		out = append(out, &r)
	}
	return out, nil
}

func (m *memRoleRepo) Update(r *entity.Role) error {
	for i := range m.items {
		if m.items[i].ID == r.ID {
			m.items[i] = *r
		}
	}
	return nil
}

func (m *memRoleRepo) Delete(id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

type memUserRepo struct {
	seq   int64
	items []entity.User
}

func (m *memUserRepo) Create(u *entity.User) error {
	m.seq++
	u.ID = m.seq
	m.items = append(m.items, *u)
	return nil
}

func (m *memUserRepo) GetByID(id int64) (*entity.User, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			u := m.items[i]
			u.Roles = append([]entity.Role(nil), m.items[i].Roles...)
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetAll() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.items))
	for i := range m.items {
		u := m.items[i]
		out = append(out, &u)
	}
	return out, nil
}

func (m *memUserRepo) Update(u *entity.User) error {
	for i := range m.items {
		if m.items[i].ID == u.ID {
			m.items[i] = *u
		}
	}
	return nil
}

func (m *memUserRepo) Delete(id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memUserRepo) ExistsByUsername(username string) (bool, error) {
	for i := range m.items {
		if strings.EqualFold(m.items[i].Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) ExistsByEmail(email string) (bool, error) {
	for i := range m.items {
		if m.items[i].Email != "" && strings.EqualFold(m.items[i].Email, email) {
			return true, nil
		}
	}
	return false, nil
}

type memTxRunner struct {
	products repository.ProductRepository
}

func (m *memTxRunner) Run(_ context.Context, fn func(products repository.ProductRepository) error) error {
	return fn(m.products)
}
