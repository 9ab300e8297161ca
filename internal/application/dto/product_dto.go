package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPayload entrada para crear o actualizar un producto (reemplazo completo).
// Price y Quantity son punteros para distinguir "no enviado" de cero: la validación
// rechaza ambos si son nulos o negativos.
type ProductPayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int64           `json:"quantity"`
	Category    string           `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Category    string          `json:"category"`
	WarehouseID int64           `json:"warehouse_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
