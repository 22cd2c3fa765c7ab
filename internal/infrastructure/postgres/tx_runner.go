package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categoryRepo := NewCategoryRepository(tx)
	subcategoryRepo := NewSubcategoryRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(categoryRepo, subcategoryRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
