package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HectorCardoso53/medcontrol/internal/application/catalog"
)

// CatalogHandler serve as listas de apoio aos formulários.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Medications godoc
// @Summary      Listar medicamentos conhecidos (catálogo base + lotes recebidos)
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/catalog/medications [get]
func (h *CatalogHandler) Medications(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Medications())
}

// Neighborhoods godoc
// @Summary      Listar bairros atendidos pelo programa
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/catalog/neighborhoods [get]
func (h *CatalogHandler) Neighborhoods(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Neighborhoods())
}
