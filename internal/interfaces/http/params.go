package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// urlParam devolve o parâmetro de rota decodificado (nomes de medicamento
// trazem espaços e acentos percent-encoded).
func urlParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
