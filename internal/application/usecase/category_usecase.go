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

// CategoryUseCase motor de consistencia para categorías: CRUD, cascada de
// desactivación y reordenamiento. Toda mutación estampa al actor (createdBy/updatedBy).
type CategoryUseCase struct {
	repo    repository.CategoryRepository
	subRepo repository.SubcategoryRepository
	prdRepo repository.ProductRepository
	tx      TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	repo repository.CategoryRepository,
	subRepo repository.SubcategoryRepository,
	prdRepo repository.ProductRepository,
	tx TxRunner,
) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subRepo: subRepo, prdRepo: prdRepo, tx: tx}
}

// Create crea una categoría. El nombre es único sin distinguir mayúsculas; el slug
// se deriva del nombre. La unicidad autoritativa la da el índice único del store:
// si dos peticiones concurrentes pasan el pre-chequeo, la segunda recibe ErrDuplicate.
func (uc *CategoryUseCase) Create(ctx context.Context, actorID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.FindByNameFold(ctx, in.Name)
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
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Slug:        catalog.Slugify(in.Name),
		IsActive:    isActive,
		Icon:        in.Icon,
		Color:       in.Color,
		SortOrder:   in.SortOrder,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// GetByID obtiene una categoría con sus subcategorías activas embebidas.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToCategoryResponse(category)
	subs, err := uc.subRepo.ListActiveByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, s := range subs {
		out.Subcategories = append(out.Subcategories, *dto.ToSubcategoryResponse(s))
	}
	return out, nil
}

// List lista categorías con filtros. Si page.Paginated es false devuelve el
// conjunto completo y no calcula metadatos de página.
func (uc *CategoryUseCase) List(ctx context.Context, filter repository.ListFilter, page dto.PageQuery) ([]dto.CategoryResponse, *dto.Pagination, error) {
	limit, offset := 0, 0
	if page.Paginated {
		limit, offset = page.Limit, page.Offset()
	}
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCategoryResponse(c))
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

// ListActive categorías activas para el frontend público, ordenadas por sortOrder.
func (uc *CategoryUseCase) ListActive(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCategoryResponse(c))
	}
	return items, nil
}

// Update actualiza campo a campo. El slug solo se recalcula si el nombre cambió;
// la unicidad solo se re-verifica para un nombre distinto del actual.
func (uc *CategoryUseCase) Update(ctx context.Context, id, actorID string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil && *in.Name != category.Name {
		existing, err := uc.repo.FindByNameFold(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
		category.Slug = catalog.Slugify(*in.Name)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Icon != nil {
		category.Icon = *in.Icon
	}
	if in.Color != nil {
		category.Color = *in.Color
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil && *in.IsActive != category.IsActive {
		// El cambio de estado por update sigue la misma regla que toggle:
		// desactivar arrastra a los dependientes en la misma transacción.
		return uc.setActive(ctx, category, *in.IsActive, actorID)
	}
	category.UpdatedBy = actorID
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Delete elimina una categoría solo si no tiene subcategorías ni productos que la
// referencien (guardia de borrado). El borrado es duro.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	subCount, err := uc.subRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	prdCount, err := uc.prdRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if subCount > 0 || prdCount > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(ctx, id)
}

// ToggleStatus invierte isActive. Desactivar apaga también subcategorías y
// productos de la categoría en una sola transacción; reactivar solo enciende la
// categoría (un hijo pudo desactivarse por razón propia y no debe revivir solo).
func (uc *CategoryUseCase) ToggleStatus(ctx context.Context, id, actorID string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return uc.setActive(ctx, category, !category.IsActive, actorID)
}

func (uc *CategoryUseCase) setActive(ctx context.Context, category *entity.Category, active bool, actorID string) (*dto.CategoryResponse, error) {
	category.IsActive = active
	category.UpdatedBy = actorID
	category.UpdatedAt = time.Now()

	if active {
		if err := uc.repo.Update(ctx, category); err != nil {
			return nil, err
		}
		return dto.ToCategoryResponse(category), nil
	}

	err := uc.tx.Run(ctx, func(
		catRepo repository.CategoryRepository,
		subRepo repository.SubcategoryRepository,
		prdRepo repository.ProductRepository,
	) error {
		if err := catRepo.Update(ctx, category); err != nil {
			return err
		}
		if err := subRepo.DeactivateByCategory(ctx, category.ID, actorID); err != nil {
			return err
		}
		return prdRepo.DeactivateByCategory(ctx, category.ID, actorID)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Reorder asigna sortOrder = posición + 1 según la secuencia dada, como un solo
// lote transaccional. Los IDs ausentes del store se omiten en silencio (ya
// eliminados); el subconjunto aplicado sigue siendo atómico.
func (uc *CategoryUseCase) Reorder(ctx context.Context, actorID string, ids []string) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(
		catRepo repository.CategoryRepository,
		_ repository.SubcategoryRepository,
		_ repository.ProductRepository,
	) error {
		for i, id := range ids {
			if _, err := catRepo.SetSortOrder(ctx, id, i+1, actorID); err != nil {
				return err
			}
		}
		return nil
	})
}
