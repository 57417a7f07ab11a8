package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrBatchNotFound     = errors.New("lote não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// InsufficientStockError indica que a quantidade pedida excede o saldo do lote.
// Carrega os valores para que a camada de apresentação informe o déficit.
type InsufficientStockError struct {
	Medication string
	BatchCode  string
	Requested  int
	Available  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente de %s (lote %s): pedido %d, disponível %d",
		e.Medication, e.BatchCode, e.Requested, e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Shortfall devolve quantas unidades faltam para atender o pedido.
func (e *InsufficientStockError) Shortfall() int { return e.Requested - e.Available }
