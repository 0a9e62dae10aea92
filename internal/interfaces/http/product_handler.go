package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apikit/internal/application/dto"
	"github.com/jhoicas/apikit/internal/application/usecase"
	"github.com/jhoicas/apikit/pkg/apierror"
	"github.com/jhoicas/apikit/pkg/pagination"
	"github.com/jhoicas/apikit/pkg/request"
	"github.com/jhoicas/apikit/pkg/response"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido). Los
// errores se retornan sin formatear: el ErrorHandler central arma el envelope.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	pageCfg pagination.Config
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, pageCfg pagination.Config) *ProductHandler {
	return &ProductHandler{uc: uc, pageCfg: pageCfg}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  apierror.ResponseError
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := request.Decode(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return response.Created(c, out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  apierror.ResponseError
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apierror.New(apierror.CategoryBadRequest, "product.missing_id")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return response.OK(c, out)
}

// List godoc
// @Summary      Listar productos paginados
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page  query  int     false  "Índice de página (desde 0)"  default(0)
// @Param        size  query  int     false  "Tamaño de página"            default(20)
// @Param        sort  query  string  false  "Columna de ordenamiento"
// @Param        dir   query  string  false  "asc o desc"                  default(asc)
// @Success      200   {object}  response.Page[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := pagination.FromCtx(c, h.pageCfg)
	items, total, err := h.uc.List(c.Context(), page)
	if err != nil {
		return err
	}
	return response.OK(c, response.NewPage(items, page, total))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  apierror.ResponseError
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apierror.New(apierror.CategoryBadRequest, "product.missing_id")
	}
	var in dto.UpdateProductRequest
	if err := request.Decode(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return err
	}
	return response.OK(c, out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  apierror.ResponseError
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apierror.New(apierror.CategoryBadRequest, "product.missing_id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
