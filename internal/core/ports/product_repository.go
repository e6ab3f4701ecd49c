package ports

import (
	"context"

	"github.com/investasi/catalogue-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalogue products.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// Replace overwrites the whole document identified by p.ID.
	Replace(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
