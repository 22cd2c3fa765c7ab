package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/stock"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

const testActor = "actor-1"

// fakeProductRepo implementa solo lo que el ledger usa; el resto del puerto
// queda en el embed y nunca se invoca desde estos tests.
type fakeProductRepo struct {
	repository.ProductRepository
	product *entity.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	if r.product != nil && r.product.ID == id {
		cp := *r.product
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) UpdateStockQuantity(_ context.Context, productID string, quantity int, updatedBy string) error {
	r.product.Stock.Quantity = quantity
	r.product.UpdatedBy = updatedBy
	return nil
}

func newLedger(quantity, minStock int, track bool) (*stock.StockUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{product: &entity.Product{
		ID:   "p1",
		SKU:  "SKU-1",
		Name: "Producto",
		Stock: entity.Stock{
			Quantity:   quantity,
			MinStock:   minStock,
			TrackStock: track,
		},
	}}
	return stock.NewStockUseCase(repo), repo
}

func intPtr(v int) *int { return &v }

func TestAdjust_SetFijaLaCantidad(t *testing.T) {
	uc, repo := newLedger(5, 2, true)
	out, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(12), Operation: "set",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.PreviousStock)
	assert.Equal(t, 12, out.NewStock)
	assert.Equal(t, 12, repo.product.Stock.Quantity)
}

// Sin operación explícita el ajuste se comporta como set.
func TestAdjust_OperacionPorDefectoEsSet(t *testing.T) {
	uc, _ := newLedger(5, 2, true)
	out, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, out.NewStock)
}

func TestAdjust_SetNegativoRechazado(t *testing.T) {
	uc, _ := newLedger(5, 2, true)
	_, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(-1), Operation: "set",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// add incrementa la cantidad actual, no la reemplaza.
func TestAdjust_AddIncrementa(t *testing.T) {
	uc, _ := newLedger(5, 2, true)
	out, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(3), Operation: "add",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.PreviousStock)
	assert.Equal(t, 8, out.NewStock)
}

// add con cantidad negativa descuenta pero nunca deja el stock bajo cero.
func TestAdjust_AddNegativoConPisoEnCero(t *testing.T) {
	uc, _ := newLedger(5, 2, true)
	out, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(-20), Operation: "add",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.NewStock)
}

func TestAdjust_SubtractConPisoEnCero(t *testing.T) {
	uc, _ := newLedger(5, 2, true)
	out, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(99), Operation: "subtract",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.NewStock, "sobre-restar deja el stock en cero, no falla")
	assert.True(t, out.IsOutOfStock)
	assert.True(t, out.IsLowStock)
}

func TestAdjust_ProductoSinControlDeStock(t *testing.T) {
	uc, _ := newLedger(5, 2, false)
	_, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(1), Operation: "add",
	})
	assert.ErrorIs(t, err, domain.ErrStockNotTracked)
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	uc, _ := newLedger(5, 2, true)
	_, err := uc.Adjust(context.Background(), "no-existe", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_OperacionDesconocida(t *testing.T) {
	uc, _ := newLedger(5, 2, true)
	_, err := uc.Adjust(context.Background(), "p1", testActor, dto.AdjustStockRequest{
		Quantity: intPtr(1), Operation: "multiply",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
