package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/investasi/catalogue-api/internal/api/metrics"
	"github.com/investasi/catalogue-api/internal/core/domain"
	"github.com/investasi/catalogue-api/internal/core/ports"
)

// ProductService implements the catalogue use-cases on top of the product
// repository and the background file reclaimer.
type ProductService struct {
	repo      ports.ProductRepository
	reclaimer ports.FileReclaimer
	logger    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, reclaimer ports.FileReclaimer, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, reclaimer: reclaimer, logger: logger}
}

// Create persists a new product under a freshly generated UUID, which is the
// canonical id for every later operation.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (string, error) {
	if input.Cover == nil {
		return "", domain.ErrCoverRequired
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uuid.NewString(),
		Cover:     toImage(*input.Cover),
		Gallery:   toImages(input.Gallery),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyFields(product, input.Fields)

	if err := s.repo.Insert(ctx, product); err != nil {
		return "", err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", product.ID).Str("brand", product.BrandName).Msg("product created")
	return product.ID, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// Update replaces the textual fields wholesale. The stored cover and
// gallery survive unless the request carried new files; replaced files are
// handed to the reclaimer.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updated := &domain.Product{
		ID:        existing.ID,
		Cover:     existing.Cover,
		Gallery:   existing.Gallery,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
	applyFields(updated, input.Fields)

	var stale []string
	if input.Cover != nil {
		stale = append(stale, existing.Cover.Filename)
		updated.Cover = toImage(*input.Cover)
	}
	if len(input.Gallery) > 0 {
		for _, img := range existing.Gallery {
			stale = append(stale, img.Filename)
		}
		updated.Gallery = toImages(input.Gallery)
	}

	if err := s.repo.Replace(ctx, updated); err != nil {
		return err
	}

	if len(stale) > 0 {
		s.reclaimer.Reclaim(stale...)
	}
	return nil
}

// Delete removes the product and reclaims its files. Deleting an id that
// does not exist succeeds without side effects.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	filenames := []string{existing.Cover.Filename}
	for _, img := range existing.Gallery {
		filenames = append(filenames, img.Filename)
	}
	s.reclaimer.Reclaim(filenames...)

	metrics.ProductsDeletedTotal.Inc()
	s.logger.Info().Str("product_id", id).Int("files", len(filenames)).Msg("product deleted")
	return nil
}

func applyFields(p *domain.Product, f ports.ProductFields) {
	p.BrandName = f.BrandName
	p.OwnerName = f.OwnerName
	p.City = f.City
	p.BusinessDescription = f.BusinessDescription
	p.Price = f.Price
	p.EstimatedFund = f.EstimatedFund
	p.EstimatedDividend = f.EstimatedDividend
	p.CompanyVideo = f.CompanyVideo
	p.Instagram = f.Instagram
}

func toImage(in ports.ImageInput) domain.Image {
	return domain.Image{
		Filename:     in.Filename,
		OriginalName: in.OriginalName,
		URL:          in.URL,
	}
}

func toImages(in []ports.ImageInput) []domain.Image {
	out := make([]domain.Image, len(in))
	for i, img := range in {
		out[i] = toImage(img)
	}
	return out
}
