package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product, incluidas las
// operaciones de stock (entrada/salida).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        warehouseId  query  int  true  "ID del almacén al que pertenece"
// @Param        body         body   dto.ProductPayload  true  "Datos del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in, queryInt64(c, "warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAll godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (reemplazo completo, almacén obligatorio)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id           path   int  true  "ID del producto"
// @Param        warehouseId  query  int  true  "ID del almacén (obligatorio también al actualizar)"
// @Param        body         body   dto.ProductPayload  true  "Datos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductPayload
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(paramID(c), in, queryInt64(c, "warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id  path  int  true  "ID del producto"
// @Success      204
// @Failure      404
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordEntry godoc
// @Summary      Registrar entrada de stock
// @Tags         products
// @Produce      json
// @Param        id        path   int  true  "ID del producto"
// @Param        quantity  query  int  true  "Cantidad a añadir (positiva)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/products/{id}/entry [patch]
func (h *ProductHandler) RecordEntry(c *fiber.Ctx) error {
	out, err := h.uc.RecordEntry(c.UserContext(), paramID(c), queryInt64(c, "quantity"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// RecordExit godoc
// @Summary      Registrar salida de stock (falla si el stock es insuficiente)
// @Tags         products
// @Produce      json
// @Param        id        path   int  true  "ID del producto"
// @Param        quantity  query  int  true  "Cantidad a sustraer (positiva)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Router       /api/products/{id}/exit [patch]
func (h *ProductHandler) RecordExit(c *fiber.Ctx) error {
	out, err := h.uc.RecordExit(c.UserContext(), paramID(c), queryInt64(c, "quantity"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}
