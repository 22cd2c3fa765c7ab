// Package stock implementa el ledger de inventario: transiciones de cantidad
// sobre Product.stock, separadas del CRUD de producto.
package stock

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// Operaciones soportadas por Adjust.
const (
	OpSet      = "set"
	OpAdd      = "add"
	OpSubtract = "subtract"
)

// StockUseCase ajustes de cantidad con piso en cero.
type StockUseCase struct {
	repo repository.ProductRepository
}

// NewStockUseCase construye el ledger.
func NewStockUseCase(repo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Adjust aplica una transición de stock:
//   - set: la cantidad queda exactamente en el valor dado (debe ser >= 0).
//   - add: incrementa la cantidad actual (el valor puede ser negativo; el
//     resultado se limita a 0 por abajo).
//   - subtract: max(0, actual - dado); sobre-restar no falla, queda en cero.
//
// Falla si el producto no existe, si no controla stock o si la operación no es válida.
func (uc *StockUseCase) Adjust(ctx context.Context, productID, actorID string, in dto.AdjustStockRequest) (*dto.StockAdjustedResponse, error) {
	if in.Quantity == nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Stock.TrackStock {
		return nil, domain.ErrStockNotTracked
	}

	operation := in.Operation
	if operation == "" {
		operation = OpSet
	}

	previous := product.Stock.Quantity
	quantity := *in.Quantity
	switch operation {
	case OpSet:
		if quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock.Quantity = quantity
	case OpAdd:
		product.Stock.Quantity = previous + quantity
		if product.Stock.Quantity < 0 {
			product.Stock.Quantity = 0
		}
	case OpSubtract:
		product.Stock.Quantity = previous - quantity
		if product.Stock.Quantity < 0 {
			product.Stock.Quantity = 0
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := uc.repo.UpdateStockQuantity(ctx, product.ID, product.Stock.Quantity, actorID); err != nil {
		return nil, err
	}
	return &dto.StockAdjustedResponse{
		SKU:           product.SKU,
		Name:          product.Name,
		PreviousStock: previous,
		NewStock:      product.Stock.Quantity,
		IsLowStock:    product.IsLowStock(),
		IsOutOfStock:  product.IsOutOfStock(),
	}, nil
}
