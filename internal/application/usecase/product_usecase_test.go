package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
)

// catalogSetup crea una categoría y subcategoría activas listas para colgar productos.
func catalogSetup(t *testing.T) (*usecase.CategoryUseCase, *usecase.SubcategoryUseCase, *usecase.ProductUseCase, string, string) {
	t.Helper()
	cats, subs, prds, tx := newCatalogFixture()
	catUC := usecase.NewCategoryUseCase(cats, subs, prds, tx)
	subUC := usecase.NewSubcategoryUseCase(subs, cats, prds, tx)
	prdUC := usecase.NewProductUseCase(prds, cats, subs, tx)

	ctx := context.Background()
	cat, err := catUC.Create(ctx, testActor, dto.CreateCategoryRequest{Name: "Tecnología"})
	require.NoError(t, err)
	sub, err := subUC.Create(ctx, testActor, dto.CreateSubcategoryRequest{Name: "Audio", CategoryID: cat.ID})
	require.NoError(t, err)
	return catUC, subUC, prdUC, cat.ID, sub.ID
}

func TestProductCreate_NormalizaSKUYDerivaSlug(t *testing.T) {
	_, _, prdUC, catID, subID := catalogSetup(t)
	out, err := prdUC.Create(context.Background(), testActor, dto.CreateProductRequest{
		Name:          "Audífonos Pro  Max",
		Description:   "audífonos inalámbricos",
		SKU:           "  aud-001 ",
		CategoryID:    catID,
		SubcategoryID: subID,
		Price:         decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	assert.Equal(t, "AUD-001", out.SKU, "el SKU se almacena en mayúsculas")
	assert.Equal(t, "audfonos-pro-max", out.Slug)
	assert.True(t, out.Stock.TrackStock, "sin stock explícito se controla stock por defecto")
	assert.Equal(t, 0, out.Stock.Quantity)
}

func TestProductCreate_SKUDuplicadoSinDistinguirMayusculas(t *testing.T) {
	_, _, prdUC, catID, subID := catalogSetup(t)
	ctx := context.Background()
	_, err := prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Uno", Description: "d", SKU: "ABC-1",
		CategoryID: catID, SubcategoryID: subID,
	})
	require.NoError(t, err)

	_, err = prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Dos", Description: "d", SKU: "abc-1",
		CategoryID: catID, SubcategoryID: subID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativoRechazado(t *testing.T) {
	_, _, prdUC, catID, subID := catalogSetup(t)
	_, err := prdUC.Create(context.Background(), testActor, dto.CreateProductRequest{
		Name: "Malo", Description: "d", SKU: "NEG-1",
		CategoryID: catID, SubcategoryID: subID,
		Price: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_SubcategoriaDeOtraCategoria(t *testing.T) {
	catUC, subUC, prdUC, catID, _ := catalogSetup(t)
	ctx := context.Background()

	otherCat, err := catUC.Create(ctx, testActor, dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)
	otherSub, err := subUC.Create(ctx, testActor, dto.CreateSubcategoryRequest{Name: "Cocina", CategoryID: otherCat.ID})
	require.NoError(t, err)

	_, err = prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Cruzado", Description: "d", SKU: "MIX-1",
		CategoryID: catID, SubcategoryID: otherSub.ID,
	})
	assert.ErrorIs(t, err, domain.ErrHierarchyMismatch,
		"la subcategoría debe pertenecer a la categoría indicada")
}

func TestProductCreate_CategoriaInactivaRechazada(t *testing.T) {
	catUC, _, prdUC, catID, subID := catalogSetup(t)
	ctx := context.Background()

	_, err := catUC.ToggleStatus(ctx, catID, testActor)
	require.NoError(t, err)

	_, err = prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Huevo", Description: "d", SKU: "OFF-1",
		CategoryID: catID, SubcategoryID: subID,
	})
	assert.ErrorIs(t, err, domain.ErrParentNotActive)
}

func TestSubcategoryToggle_CascadaSoloAProductos(t *testing.T) {
	cats, subs, prds, tx := newCatalogFixture()
	catUC := usecase.NewCategoryUseCase(cats, subs, prds, tx)
	subUC := usecase.NewSubcategoryUseCase(subs, cats, prds, tx)
	prdUC := usecase.NewProductUseCase(prds, cats, subs, tx)
	ctx := context.Background()

	cat, err := catUC.Create(ctx, testActor, dto.CreateCategoryRequest{Name: "Tecnología"})
	require.NoError(t, err)
	sub, err := subUC.Create(ctx, testActor, dto.CreateSubcategoryRequest{Name: "Audio", CategoryID: cat.ID})
	require.NoError(t, err)
	prd, err := prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Parlante", Description: "d", SKU: "SPK-9",
		CategoryID: cat.ID, SubcategoryID: sub.ID,
	})
	require.NoError(t, err)

	_, err = subUC.ToggleStatus(ctx, sub.ID, testActor)
	require.NoError(t, err)

	p, _ := prds.FindByID(ctx, prd.ID)
	assert.False(t, p.IsActive, "el producto se apaga con su subcategoría")

	c, _ := cats.FindByID(ctx, cat.ID)
	assert.True(t, c.IsActive, "la categoría padre no se ve afectada")
}

func TestSubcategoryCreate_NombreUnicoPorCategoria(t *testing.T) {
	catUC, subUC, _, catID, _ := catalogSetup(t)
	ctx := context.Background()

	_, err := subUC.Create(ctx, testActor, dto.CreateSubcategoryRequest{Name: "audio", CategoryID: catID})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"nombre duplicado dentro de la misma categoría")

	// El mismo nombre en otra categoría sí es válido.
	other, err := catUC.Create(ctx, testActor, dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)
	_, err = subUC.Create(ctx, testActor, dto.CreateSubcategoryRequest{Name: "Audio", CategoryID: other.ID})
	assert.NoError(t, err)
}

func TestSubcategoryDelete_BloqueadaConProductos(t *testing.T) {
	_, subUC, prdUC, catID, subID := catalogSetup(t)
	ctx := context.Background()

	_, err := prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Ancla", Description: "d", SKU: "ANC-1",
		CategoryID: catID, SubcategoryID: subID,
	})
	require.NoError(t, err)

	err = subUC.Delete(ctx, subID)
	assert.ErrorIs(t, err, domain.ErrHasDependents)
}

func TestSubcategoryUpdate_MoverDeCategoriaBloqueadoConProductos(t *testing.T) {
	catUC, subUC, prdUC, catID, subID := catalogSetup(t)
	ctx := context.Background()

	other, err := catUC.Create(ctx, testActor, dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)
	p, err := prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Parlante", Description: "d", SKU: "PAR-1",
		CategoryID: catID, SubcategoryID: subID,
	})
	require.NoError(t, err)

	// Mover la subcategoría dejaría al producto colgando de la categoría vieja.
	_, err = subUC.Update(ctx, subID, testActor, dto.UpdateSubcategoryRequest{CategoryID: &other.ID})
	assert.ErrorIs(t, err, domain.ErrHasDependents)

	got, err := prdUC.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, catID, got.CategoryID, "el producto sigue coherente con su subcategoría")

	// Sin productos el movimiento procede y arrastra la denormalización del padre.
	require.NoError(t, prdUC.Delete(ctx, p.ID))
	moved, err := subUC.Update(ctx, subID, testActor, dto.UpdateSubcategoryRequest{CategoryID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.CategoryID)
	assert.Equal(t, "Hogar", moved.CategoryName)
}

func TestProductDelete_SinGuardia(t *testing.T) {
	_, _, prdUC, catID, subID := catalogSetup(t)
	ctx := context.Background()

	out, err := prdUC.Create(ctx, testActor, dto.CreateProductRequest{
		Name: "Hoja", Description: "d", SKU: "LEAF-1",
		CategoryID: catID, SubcategoryID: subID,
	})
	require.NoError(t, err)

	assert.NoError(t, prdUC.Delete(ctx, out.ID), "el producto es hoja: se elimina sin guardia")
	_, err = prdUC.GetByID(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
