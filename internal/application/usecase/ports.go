package usecase

import (
	"context"
	"strings"

	"github.com/tuempresa/gestion-inventario/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción; el repositorio que recibe el
// callback queda atado a esa transacción (Commit si fn retorna nil, Rollback si no).
// Lo usan las operaciones de entrada/salida de stock para que lectura, chequeo y
// escritura sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// hasText replica StringUtils.hasText: cadena con al menos un carácter no blanco.
func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
