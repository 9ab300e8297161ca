package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Quantity es el stock autoritativo
// y solo se mueve por entrada (+), salida (-, acotada) o reemplazo completo en update.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // no negativo
	Quantity    int64           // invariante: >= 0 en todo momento
	Category    string
	WarehouseID int64 // referencia obligatoria a un Warehouse existente
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
