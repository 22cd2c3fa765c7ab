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

// SubcategoryUseCase motor de consistencia para subcategorías. El nombre es único
// dentro de su categoría padre y el enlace exige una categoría existente y activa.
type SubcategoryUseCase struct {
	repo    repository.SubcategoryRepository
	catRepo repository.CategoryRepository
	prdRepo repository.ProductRepository
	tx      TxRunner
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(
	repo repository.SubcategoryRepository,
	catRepo repository.CategoryRepository,
	prdRepo repository.ProductRepository,
	tx TxRunner,
) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, catRepo: catRepo, prdRepo: prdRepo, tx: tx}
}

// resolveActiveCategory verifica que la categoría exista y esté activa.
func (uc *SubcategoryUseCase) resolveActiveCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	category, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsActive {
		return nil, domain.ErrParentNotActive
	}
	return category, nil
}

// Create crea una subcategoría validando el padre activo y la unicidad del nombre
// dentro de la categoría.
func (uc *SubcategoryUseCase) Create(ctx context.Context, actorID string, in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	parent, err := uc.resolveActiveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindByNameFoldInCategory(ctx, in.Name, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	subcategory := &entity.Subcategory{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Slug:         catalog.Slugify(in.Name),
		CategoryID:   in.CategoryID,
		IsActive:     isActive,
		Icon:         in.Icon,
		Color:        in.Color,
		SortOrder:    in.SortOrder,
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
		CategoryName: parent.Name,
		CategorySlug: parent.Slug,
	}
	if err := uc.repo.Create(ctx, subcategory); err != nil {
		return nil, err
	}
	return dto.ToSubcategoryResponse(subcategory), nil
}

// GetByID obtiene una subcategoría con sus productos activos embebidos.
func (uc *SubcategoryUseCase) GetByID(ctx context.Context, id string) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToSubcategoryResponse(subcategory)
	products, err := uc.prdRepo.ListActiveBySubcategory(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		out.Products = append(out.Products, *dto.ToProductResponse(p))
	}
	return out, nil
}

// List lista subcategorías con filtros y paginación opcional.
func (uc *SubcategoryUseCase) List(ctx context.Context, filter repository.ListFilter, page dto.PageQuery) ([]dto.SubcategoryResponse, *dto.Pagination, error) {
	limit, offset := 0, 0
	if page.Paginated {
		limit, offset = page.Limit, page.Offset()
	}
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToSubcategoryResponse(s))
	}
	if !page.Paginated {
		return items, nil, nil
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return items, dto.NewPagination(page.Page, page.Limit, total), nil
}

// ListActive subcategorías activas para el frontend público.
func (uc *SubcategoryUseCase) ListActive(ctx context.Context) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToSubcategoryResponse(s))
	}
	return items, nil
}

// ListByCategory subcategorías activas de una categoría existente.
func (uc *SubcategoryUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.SubcategoryResponse, error) {
	category, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToSubcategoryResponse(s))
	}
	return items, nil
}

// Update actualiza campo a campo. Un cambio de categoría exige un nuevo padre
// activo y una subcategoría sin productos; un cambio de nombre o de categoría
// re-verifica la unicidad en el destino.
func (uc *SubcategoryUseCase) Update(ctx context.Context, id, actorID string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}

	targetCategoryID := subcategory.CategoryID
	categoryChanged := in.CategoryID != nil && *in.CategoryID != subcategory.CategoryID
	var targetCategory *entity.Category
	if categoryChanged {
		targetCategoryID = *in.CategoryID
		targetCategory, err = uc.resolveActiveCategory(ctx, targetCategoryID)
		if err != nil {
			return nil, err
		}
		// Mover la subcategoría dejaría a sus productos apuntando a la categoría
		// vieja; mientras tenga productos el movimiento se rechaza, igual que Delete.
		count, err := uc.prdRepo.CountBySubcategory(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrHasDependents
		}
	}

	targetName := subcategory.Name
	nameChanged := in.Name != nil && *in.Name != subcategory.Name
	if nameChanged {
		targetName = *in.Name
	}
	if nameChanged || categoryChanged {
		existing, err := uc.repo.FindByNameFoldInCategory(ctx, targetName, targetCategoryID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != subcategory.ID {
			return nil, domain.ErrDuplicate
		}
	}

	if nameChanged {
		subcategory.Name = targetName
		subcategory.Slug = catalog.Slugify(targetName)
	}
	if categoryChanged {
		subcategory.CategoryID = targetCategoryID
		subcategory.CategoryName = targetCategory.Name
		subcategory.CategorySlug = targetCategory.Slug
	}
	if in.Description != nil {
		subcategory.Description = *in.Description
	}
	if in.Icon != nil {
		subcategory.Icon = *in.Icon
	}
	if in.Color != nil {
		subcategory.Color = *in.Color
	}
	if in.SortOrder != nil {
		subcategory.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil && *in.IsActive != subcategory.IsActive {
		return uc.setActive(ctx, subcategory, *in.IsActive, actorID)
	}
	subcategory.UpdatedBy = actorID
	subcategory.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, subcategory); err != nil {
		return nil, err
	}
	return dto.ToSubcategoryResponse(subcategory), nil
}

// Delete elimina una subcategoría solo si ningún producto la referencia.
func (uc *SubcategoryUseCase) Delete(ctx context.Context, id string) error {
	subcategory, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return domain.ErrNotFound
	}
	count, err := uc.prdRepo.CountBySubcategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(ctx, id)
}

// ToggleStatus invierte isActive. Desactivar apaga los productos de la
// subcategoría en la misma transacción; reactivar no los revive.
func (uc *SubcategoryUseCase) ToggleStatus(ctx context.Context, id, actorID string) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	return uc.setActive(ctx, subcategory, !subcategory.IsActive, actorID)
}

func (uc *SubcategoryUseCase) setActive(ctx context.Context, subcategory *entity.Subcategory, active bool, actorID string) (*dto.SubcategoryResponse, error) {
	subcategory.IsActive = active
	subcategory.UpdatedBy = actorID
	subcategory.UpdatedAt = time.Now()

	if active {
		if err := uc.repo.Update(ctx, subcategory); err != nil {
			return nil, err
		}
		return dto.ToSubcategoryResponse(subcategory), nil
	}

	err := uc.tx.Run(ctx, func(
		_ repository.CategoryRepository,
		subRepo repository.SubcategoryRepository,
		prdRepo repository.ProductRepository,
	) error {
		if err := subRepo.Update(ctx, subcategory); err != nil {
			return err
		}
		return prdRepo.DeactivateBySubcategory(ctx, subcategory.ID, actorID)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSubcategoryResponse(subcategory), nil
}

// Reorder asigna sortOrder por posición en un solo lote; IDs ausentes se omiten.
func (uc *SubcategoryUseCase) Reorder(ctx context.Context, actorID string, ids []string) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(
		_ repository.CategoryRepository,
		subRepo repository.SubcategoryRepository,
		_ repository.ProductRepository,
	) error {
		for i, id := range ids {
			if _, err := subRepo.SetSortOrder(ctx, id, i+1, actorID); err != nil {
				return err
			}
		}
		return nil
	})
}
