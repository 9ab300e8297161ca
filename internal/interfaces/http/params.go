package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tuempresa/gestion-inventario/internal/domain"
)

// paramID lee el parámetro de ruta :id como int64. Un valor no numérico se
// entrega como 0 para que el caso de uso lo rechace con su propio mensaje.
func paramID(c *fiber.Ctx) int64 {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// queryInt64 lee un query param como int64 (0 si falta o no es numérico).
func queryInt64(c *fiber.Ctx, key string) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseRoleIDs lee el query param roleIds distinguiendo tres señales:
// ausente -> nil (no tocar roles), presente vacío -> conjunto vacío (quitar
// todos), presente con valores -> conjunto a resolver. Acepta el parámetro
// repetido y/o valores separados por coma.
func parseRoleIDs(c *fiber.Ctx) (*[]int64, error) {
	args := c.Request().URI().QueryArgs()
	if !args.Has("roleIds") {
		return nil, nil
	}
	ids := []int64{}
	for _, raw := range args.PeekMulti("roleIds") {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, domain.Validationf("El ID del rol proporcionado es inválido.")
			}
			ids = append(ids, id)
		}
	}
	return &ids, nil
}
