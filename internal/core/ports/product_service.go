package ports

import (
	"context"

	"github.com/investasi/catalogue-api/internal/core/domain"
)

// ImageInput carries the metadata of a file the upload layer already stored.
type ImageInput struct {
	Filename     string
	OriginalName string
	URL          string
}

// ProductFields are the textual attributes shared by create and update.
type ProductFields struct {
	BrandName           string
	OwnerName           string
	City                string
	BusinessDescription string
	Price               string
	EstimatedFund       string
	EstimatedDividend   string
	CompanyVideo        string
	Instagram           string
}

// CreateProductInput carries everything needed to create a product.
// Cover is mandatory; Gallery holds zero to three images.
type CreateProductInput struct {
	Fields  ProductFields
	Cover   *ImageInput
	Gallery []ImageInput
}

// UpdateProductInput replaces textual fields wholesale. Cover and Gallery
// are only applied when present: a nil Cover keeps the stored cover, an
// empty Gallery keeps the stored gallery.
type UpdateProductInput struct {
	Fields  ProductFields
	Cover   *ImageInput
	Gallery []ImageInput
}

// ProductService defines the catalogue use-cases.
type ProductService interface {
	// Create returns the id assigned to the new product.
	Create(ctx context.Context, input CreateProductInput) (string, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) error
	// Delete is idempotent: deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
