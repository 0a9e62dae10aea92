package response

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apikit/pkg/pagination"
)

// Page envelope de listado paginado: items más los metadatos de la página.
type Page[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// NewPage arma el envelope desde el Pageable del request y el total de la
// consulta. items nil se normaliza a slice vacío para serializar [] y no null.
func NewPage[T any](items []T, p pagination.Pageable, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: p.Page, Size: p.Size, Total: total}
}

// OK serializa body como JSON con status 200.
func OK(c *fiber.Ctx, body interface{}) error {
	return c.JSON(body)
}

// Created serializa body como JSON con status 201.
func Created(c *fiber.Ctx, body interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(body)
}
