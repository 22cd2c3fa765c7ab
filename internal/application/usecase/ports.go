package usecase

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// TxRunner ejecuta una unidad de trabajo con los repos del catálogo atados a una
// misma transacción. Las cascadas de desactivación y los reordenamientos pasan por
// aquí: o se aplican completos o se revierten completos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		subcategoryRepo repository.SubcategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
