package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria que emulan los adaptadores postgres, incluida la violación del
// índice único en Create/Update.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.items {
		if strings.EqualFold(existing.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := r.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByNameFold(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	for _, existing := range r.items {
		if existing.ID != c.ID && strings.EqualFold(existing.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCategoryRepo) matches(c *entity.Category, f repository.ListFilter) bool {
	if f.IsActive != nil && c.IsActive != *f.IsActive {
		return false
	}
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), s) && !strings.Contains(strings.ToLower(c.Description), s) {
			return false
		}
	}
	return true
}

func (r *fakeCategoryRepo) List(_ context.Context, f repository.ListFilter, limit, offset int) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.items {
		if r.matches(c, f) {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].Name < list[j].Name
	})
	if limit <= 0 {
		return list, nil
	}
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (r *fakeCategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	active := true
	return r.List(ctx, repository.ListFilter{IsActive: &active}, 0, 0)
}

func (r *fakeCategoryRepo) Count(_ context.Context, f repository.ListFilter) (int, error) {
	total := 0
	for _, c := range r.items {
		if r.matches(c, f) {
			total++
		}
	}
	return total, nil
}

func (r *fakeCategoryRepo) SetSortOrder(_ context.Context, id string, sortOrder int, updatedBy string) (bool, error) {
	c, ok := r.items[id]
	if !ok {
		return false, nil
	}
	c.SortOrder = sortOrder
	c.UpdatedBy = updatedBy
	c.UpdatedAt = time.Now()
	return true, nil
}

type fakeSubcategoryRepo struct {
	items map[string]*entity.Subcategory
}

func newFakeSubcategoryRepo() *fakeSubcategoryRepo {
	return &fakeSubcategoryRepo{items: map[string]*entity.Subcategory{}}
}

func (r *fakeSubcategoryRepo) Create(_ context.Context, s *entity.Subcategory) error {
	for _, existing := range r.items {
		if existing.CategoryID == s.CategoryID && strings.EqualFold(existing.Name, s.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) FindByID(_ context.Context, id string) (*entity.Subcategory, error) {
	if s, ok := r.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSubcategoryRepo) FindByNameFoldInCategory(_ context.Context, name, categoryID string) (*entity.Subcategory, error) {
	for _, s := range r.items {
		if s.CategoryID == categoryID && strings.EqualFold(s.Name, name) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSubcategoryRepo) Update(_ context.Context, s *entity.Subcategory) error {
	for _, existing := range r.items {
		if existing.ID != s.ID && existing.CategoryID == s.CategoryID && strings.EqualFold(existing.Name, s.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeSubcategoryRepo) List(_ context.Context, f repository.ListFilter, limit, offset int) ([]*entity.Subcategory, error) {
	var list []*entity.Subcategory
	for _, s := range r.items {
		if f.IsActive != nil && s.IsActive != *f.IsActive {
			continue
		}
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeSubcategoryRepo) ListActive(ctx context.Context) ([]*entity.Subcategory, error) {
	active := true
	return r.List(ctx, repository.ListFilter{IsActive: &active}, 0, 0)
}

func (r *fakeSubcategoryRepo) ListActiveByCategory(_ context.Context, categoryID string) ([]*entity.Subcategory, error) {
	var list []*entity.Subcategory
	for _, s := range r.items {
		if s.CategoryID == categoryID && s.IsActive {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeSubcategoryRepo) Count(_ context.Context, f repository.ListFilter) (int, error) {
	total := 0
	for _, s := range r.items {
		if f.IsActive != nil && s.IsActive != *f.IsActive {
			continue
		}
		total++
	}
	return total, nil
}

func (r *fakeSubcategoryRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	total := 0
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			total++
		}
	}
	return total, nil
}

func (r *fakeSubcategoryRepo) DeactivateByCategory(_ context.Context, categoryID, updatedBy string) error {
	for _, s := range r.items {
		if s.CategoryID == categoryID && s.IsActive {
			s.IsActive = false
			s.UpdatedBy = updatedBy
		}
	}
	return nil
}

func (r *fakeSubcategoryRepo) SetSortOrder(_ context.Context, id string, sortOrder int, updatedBy string) (bool, error) {
	s, ok := r.items[id]
	if !ok {
		return false, nil
	}
	s.SortOrder = sortOrder
	s.UpdatedBy = updatedBy
	return true, nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.items {
		if strings.EqualFold(existing.SKU, p.SKU) {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) FindBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.items {
		if strings.EqualFold(p.SKU, sku) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	for _, existing := range r.items {
		if existing.ID != p.ID && strings.EqualFold(existing.SKU, p.SKU) {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.items {
		if f.IsActive != nil && p.IsActive != *f.IsActive {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.SubcategoryID != "" && p.SubcategoryID != f.SubcategoryID {
			continue
		}
		if f.LowStock && !(p.Stock.TrackStock && p.Stock.Quantity <= p.Stock.MinStock) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	active := true
	return r.List(ctx, repository.ProductFilter{IsActive: &active}, 0, 0)
}

func (r *fakeProductRepo) ListActiveByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	active := true
	return r.List(ctx, repository.ProductFilter{IsActive: &active, CategoryID: categoryID}, 0, 0)
}

func (r *fakeProductRepo) ListActiveBySubcategory(ctx context.Context, subcategoryID string) ([]*entity.Product, error) {
	active := true
	return r.List(ctx, repository.ProductFilter{IsActive: &active, SubcategoryID: subcategoryID}, 0, 0)
}

func (r *fakeProductRepo) ListFeatured(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.items {
		if p.IsActive && p.IsFeatured {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	list, err := r.List(ctx, f, 0, 0)
	return len(list), err
}

func (r *fakeProductRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	total := 0
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			total++
		}
	}
	return total, nil
}

func (r *fakeProductRepo) CountBySubcategory(_ context.Context, subcategoryID string) (int, error) {
	total := 0
	for _, p := range r.items {
		if p.SubcategoryID == subcategoryID {
			total++
		}
	}
	return total, nil
}

func (r *fakeProductRepo) DeactivateByCategory(_ context.Context, categoryID, updatedBy string) error {
	for _, p := range r.items {
		if p.CategoryID == categoryID && p.IsActive {
			p.IsActive = false
			p.UpdatedBy = updatedBy
		}
	}
	return nil
}

func (r *fakeProductRepo) DeactivateBySubcategory(_ context.Context, subcategoryID, updatedBy string) error {
	for _, p := range r.items {
		if p.SubcategoryID == subcategoryID && p.IsActive {
			p.IsActive = false
			p.UpdatedBy = updatedBy
		}
	}
	return nil
}

func (r *fakeProductRepo) UpdateStockQuantity(_ context.Context, productID string, quantity int, updatedBy string) error {
	p, ok := r.items[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock.Quantity = quantity
	p.UpdatedBy = updatedBy
	return nil
}

func (r *fakeProductRepo) SetSortOrder(_ context.Context, id string, sortOrder int, updatedBy string) (bool, error) {
	p, ok := r.items[id]
	if !ok {
		return false, nil
	}
	p.SortOrder = sortOrder
	p.UpdatedBy = updatedBy
	return true, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los mismos fakes; el
// comportamiento transaccional real lo cubre el adaptador postgres. Los campos
// son interfaces para poder inyectar variantes que fallan a mitad de la unidad.
type fakeTxRunner struct {
	cats repository.CategoryRepository
	subs repository.SubcategoryRepository
	prds repository.ProductRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.CategoryRepository,
	repository.SubcategoryRepository,
	repository.ProductRepository,
) error) error {
	return fn(r.cats, r.subs, r.prds)
}

func listFilterAll() repository.ListFilter { return repository.ListFilter{} }

// newCatalogFixture arma el trío de fakes más el runner.
func newCatalogFixture() (*fakeCategoryRepo, *fakeSubcategoryRepo, *fakeProductRepo, usecase.TxRunner) {
	cats := newFakeCategoryRepo()
	subs := newFakeSubcategoryRepo()
	prds := newFakeProductRepo()
	return cats, subs, prds, &fakeTxRunner{cats: cats, subs: subs, prds: prds}
}
