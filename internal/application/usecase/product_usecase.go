package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// ProductUseCase motor de consistencia para productos. Invariantes: SKU único sin
// distinguir mayúsculas, padres activos al establecer el enlace y la subcategoría
// siempre perteneciente a la categoría del producto.
type ProductUseCase struct {
	repo    repository.ProductRepository
	catRepo repository.CategoryRepository
	subRepo repository.SubcategoryRepository
	tx      TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	catRepo repository.CategoryRepository,
	subRepo repository.SubcategoryRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, catRepo: catRepo, subRepo: subRepo, tx: tx}
}

// resolveHierarchy valida categoría activa, subcategoría activa y que la
// subcategoría pertenezca a la categoría indicada.
func (uc *ProductUseCase) resolveHierarchy(ctx context.Context, categoryID, subcategoryID string) (*entity.Category, *entity.Subcategory, error) {
	category, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil || !category.IsActive {
		return nil, nil, domain.ErrParentNotActive
	}
	subcategory, err := uc.subRepo.FindByID(ctx, subcategoryID)
	if err != nil {
		return nil, nil, err
	}
	if subcategory == nil || !subcategory.IsActive {
		return nil, nil, domain.ErrParentNotActive
	}
	if subcategory.CategoryID != categoryID {
		return nil, nil, domain.ErrHierarchyMismatch
	}
	return category, subcategory, nil
}

// Create crea un producto: jerarquía válida, SKU único (normalizado a mayúsculas),
// precios no negativos y slug derivado del nombre.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ComparePrice != nil && in.ComparePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	category, subcategory, err := uc.resolveHierarchy(ctx, in.CategoryID, in.SubcategoryID)
	if err != nil {
		return nil, err
	}

	sku := catalog.NormalizeSKU(in.SKU)
	existing, err := uc.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	stock := entity.Stock{Quantity: 0, MinStock: 0, TrackStock: true}
	if in.Stock != nil {
		if in.Stock.Quantity < 0 || in.Stock.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		stock.Quantity = in.Stock.Quantity
		stock.MinStock = in.Stock.MinStock
		if in.Stock.TrackStock != nil {
			stock.TrackStock = *in.Stock.TrackStock
		}
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Slug:             catalog.Slugify(in.Name),
		SKU:              sku,
		CategoryID:       in.CategoryID,
		SubcategoryID:    in.SubcategoryID,
		Price:            in.Price,
		ComparePrice:     in.ComparePrice,
		Cost:             in.Cost,
		Stock:            stock,
		Tags:             in.Tags,
		IsActive:         isActive,
		IsFeatured:       in.IsFeatured,
		IsDigital:        in.IsDigital,
		SortOrder:        in.SortOrder,
		SEODescription:   in.SEODescription,
		CreatedBy:        actorID,
		CreatedAt:        now,
		UpdatedAt:        now,
		CategoryName:     category.Name,
		CategorySlug:     category.Slug,
		SubcategoryName:  subcategory.Name,
		SubcategorySlug:  subcategory.Slug,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU (la búsqueda normaliza a mayúsculas).
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindBySKU(ctx, catalog.NormalizeSKU(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// List lista productos con filtros y paginación opcional.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, page dto.PageQuery) ([]dto.ProductResponse, *dto.Pagination, error) {
	limit, offset := 0, 0
	if page.Paginated {
		limit, offset = page.Limit, page.Offset()
	}
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	items := toProductResponses(list)
	if !page.Paginated {
		return items, nil, nil
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return items, dto.NewPagination(page.Page, page.Limit, total), nil
}

// ListActive productos activos para el frontend público.
func (uc *ProductUseCase) ListActive(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListFeatured productos destacados y activos.
func (uc *ProductUseCase) ListFeatured(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCategory productos activos de una categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListBySubcategory productos activos de una subcategoría.
func (uc *ProductUseCase) ListBySubcategory(ctx context.Context, subcategoryID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActiveBySubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update actualiza campo a campo re-validando solo lo que cambió: un SKU nuevo
// verifica unicidad; un cambio de categoría o subcategoría re-valida la jerarquía
// completa con los valores resultantes.
func (uc *ProductUseCase) Update(ctx context.Context, id, actorID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.SKU != nil {
		sku := catalog.NormalizeSKU(*in.SKU)
		if sku != product.SKU {
			existing, err := uc.repo.FindBySKU(ctx, sku)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
			product.SKU = sku
		}
	}

	if in.CategoryID != nil || in.SubcategoryID != nil {
		targetCategoryID := product.CategoryID
		if in.CategoryID != nil {
			targetCategoryID = *in.CategoryID
		}
		targetSubcategoryID := product.SubcategoryID
		if in.SubcategoryID != nil {
			targetSubcategoryID = *in.SubcategoryID
		}
		category, subcategory, err := uc.resolveHierarchy(ctx, targetCategoryID, targetSubcategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = targetCategoryID
		product.SubcategoryID = targetSubcategoryID
		product.CategoryName = category.Name
		product.CategorySlug = category.Slug
		product.SubcategoryName = subcategory.Name
		product.SubcategorySlug = subcategory.Slug
	}

	if in.Name != nil && *in.Name != product.Name {
		product.Name = *in.Name
		product.Slug = catalog.Slugify(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ShortDescription != nil {
		product.ShortDescription = *in.ShortDescription
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ComparePrice != nil {
		if in.ComparePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.ComparePrice = in.ComparePrice
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = in.Cost
	}
	if in.Stock != nil {
		if in.Stock.Quantity < 0 || in.Stock.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock.Quantity = in.Stock.Quantity
		product.Stock.MinStock = in.Stock.MinStock
		if in.Stock.TrackStock != nil {
			product.Stock.TrackStock = *in.Stock.TrackStock
		}
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	if in.IsDigital != nil {
		product.IsDigital = *in.IsDigital
	}
	if in.SortOrder != nil {
		product.SortOrder = *in.SortOrder
	}
	if in.SEODescription != nil {
		product.SEODescription = *in.SEODescription
	}

	product.UpdatedBy = actorID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete elimina un producto (hoja de la jerarquía: sin guardia de dependientes).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ToggleStatus invierte isActive. Los productos no tienen dependientes: no hay cascada.
func (uc *ProductUseCase) ToggleStatus(ctx context.Context, id, actorID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.IsActive = !product.IsActive
	product.UpdatedBy = actorID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Reorder asigna sortOrder por posición en un solo lote; IDs ausentes se omiten.
func (uc *ProductUseCase) Reorder(ctx context.Context, actorID string, ids []string) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(
		_ repository.CategoryRepository,
		_ repository.SubcategoryRepository,
		prdRepo repository.ProductRepository,
	) error {
		for i, id := range ids {
			if _, err := prdRepo.SetSortOrder(ctx, id, i+1, actorID); err != nil {
				return err
			}
		}
		return nil
	})
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return items
}
