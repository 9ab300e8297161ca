package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para User. Las respuestas nunca
// incluyen la contraseña.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        roleIds  query  string  false  "IDs de roles a asignar (repetido o separado por comas)"
// @Param        body     body   dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	roleIDs, err := parseRoleIDs(c)
	if err != nil {
		return respondError(c, err)
	}
	var ids []int64
	if roleIDs != nil {
		ids = *roleIDs
	}
	out, err := h.uc.Create(in, ids)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAll godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar usuario
// @Description  roleIds ausente no toca los roles; roleIds presente vacío los quita todos. Email vacío borra el email almacenado.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path   int     true   "ID del usuario"
// @Param        roleIds  query  string  false  "IDs de roles (ausente = sin cambios; vacío = quitar todos)"
// @Param        body     body   dto.UpdateUserRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	roleIDs, err := parseRoleIDs(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(paramID(c), in, roleIDs)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Param        id  path  int  true  "ID del usuario"
// @Success      204
// @Failure      404
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
