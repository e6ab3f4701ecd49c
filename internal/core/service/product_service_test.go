package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/investasi/catalogue-api/internal/core/domain"
	"github.com/investasi/catalogue-api/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Gallery = append([]domain.Image(nil), p.Gallery...)
	return &clone
}

func (r *stubProductRepo) Insert(_ context.Context, p *domain.Product) error {
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		return cloneProduct(p), nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) Replace(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type stubReclaimer struct {
	reclaimed []string
}

func (s *stubReclaimer) Reclaim(filenames ...string) {
	s.reclaimed = append(s.reclaimed, filenames...)
}

func coverInput(name string) *ports.ImageInput {
	return &ports.ImageInput{
		Filename:     "12345678-" + name,
		OriginalName: name,
		URL:          "/uploads/12345678-" + name,
	}
}

func TestProductService_Create_AssignsCanonicalID(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, &stubReclaimer{}, zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateProductInput{
		Fields: ports.ProductFields{BrandName: "Kopi Kita", Price: "125000"},
		Cover:  coverInput("cover.jpg"),
		Gallery: []ports.ImageInput{
			*coverInput("g1.jpg"),
			*coverInput("g2.jpg"),
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", id, err)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != id {
		t.Fatalf("stored id %q does not match returned id %q", got.ID, id)
	}
	if got.BrandName != "Kopi Kita" || got.Price != "125000" {
		t.Fatalf("unexpected fields: %+v", got)
	}
	if got.Cover.OriginalName != "cover.jpg" {
		t.Fatalf("unexpected cover: %+v", got.Cover)
	}
	if len(got.Gallery) != 2 {
		t.Fatalf("expected 2 gallery images, got %d", len(got.Gallery))
	}
}

func TestProductService_Create_RequiresCover(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), &stubReclaimer{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateProductInput{
		Fields: ports.ProductFields{BrandName: "No Cover Co"},
	})
	if !errors.Is(err, domain.ErrCoverRequired) {
		t.Fatalf("expected ErrCoverRequired, got %v", err)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), &stubReclaimer{}, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_KeepsImagesWhenNoneUploaded(t *testing.T) {
	repo := newStubProductRepo()
	rec := &stubReclaimer{}
	svc := NewProductService(repo, rec, zerolog.Nop())

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Fields:  ports.ProductFields{BrandName: "Batik Lama", City: "Solo"},
		Cover:   coverInput("old-cover.jpg"),
		Gallery: []ports.ImageInput{*coverInput("old-g1.jpg")},
	})

	err := svc.Update(context.Background(), id, ports.UpdateProductInput{
		Fields: ports.ProductFields{BrandName: "Batik Baru"},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.Get(context.Background(), id)
	if got.BrandName != "Batik Baru" {
		t.Fatalf("text field not replaced: %+v", got)
	}
	if got.City != "" {
		t.Fatalf("absent text field should be cleared, got %q", got.City)
	}
	if got.Cover.OriginalName != "old-cover.jpg" {
		t.Fatalf("cover should be untouched, got %+v", got.Cover)
	}
	if len(got.Gallery) != 1 || got.Gallery[0].OriginalName != "old-g1.jpg" {
		t.Fatalf("gallery should be untouched, got %+v", got.Gallery)
	}
	if len(rec.reclaimed) != 0 {
		t.Fatalf("nothing should be reclaimed, got %v", rec.reclaimed)
	}
}

func TestProductService_Update_ReplacesCoverOnly(t *testing.T) {
	repo := newStubProductRepo()
	rec := &stubReclaimer{}
	svc := NewProductService(repo, rec, zerolog.Nop())

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Cover:   coverInput("old-cover.jpg"),
		Gallery: []ports.ImageInput{*coverInput("g1.jpg")},
	})
	oldCover, _ := svc.Get(context.Background(), id)

	err := svc.Update(context.Background(), id, ports.UpdateProductInput{
		Cover: coverInput("new-cover.jpg"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.Get(context.Background(), id)
	if got.Cover.OriginalName != "new-cover.jpg" {
		t.Fatalf("cover not replaced: %+v", got.Cover)
	}
	if len(got.Gallery) != 1 || got.Gallery[0].OriginalName != "g1.jpg" {
		t.Fatalf("gallery should survive a cover-only update, got %+v", got.Gallery)
	}
	if len(rec.reclaimed) != 1 || rec.reclaimed[0] != oldCover.Cover.Filename {
		t.Fatalf("expected old cover reclaimed, got %v", rec.reclaimed)
	}
}

func TestProductService_Update_ReplacesGalleryWholesale(t *testing.T) {
	repo := newStubProductRepo()
	rec := &stubReclaimer{}
	svc := NewProductService(repo, rec, zerolog.Nop())

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Cover:   coverInput("cover.jpg"),
		Gallery: []ports.ImageInput{*coverInput("g1.jpg"), *coverInput("g2.jpg")},
	})

	err := svc.Update(context.Background(), id, ports.UpdateProductInput{
		Gallery: []ports.ImageInput{*coverInput("g3.jpg")},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.Get(context.Background(), id)
	if len(got.Gallery) != 1 || got.Gallery[0].OriginalName != "g3.jpg" {
		t.Fatalf("gallery not replaced wholesale: %+v", got.Gallery)
	}
	if len(rec.reclaimed) != 2 {
		t.Fatalf("expected both old gallery files reclaimed, got %v", rec.reclaimed)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), &stubReclaimer{}, zerolog.Nop())

	err := svc.Update(context.Background(), "missing", ports.UpdateProductInput{})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_ReclaimsFiles(t *testing.T) {
	repo := newStubProductRepo()
	rec := &stubReclaimer{}
	svc := NewProductService(repo, rec, zerolog.Nop())

	id, _ := svc.Create(context.Background(), ports.CreateProductInput{
		Cover:   coverInput("cover.jpg"),
		Gallery: []ports.ImageInput{*coverInput("g1.jpg"), *coverInput("g2.jpg")},
	})

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("product should be gone, got %v", err)
	}
	if len(rec.reclaimed) != 3 {
		t.Fatalf("expected cover and gallery reclaimed, got %v", rec.reclaimed)
	}
}

func TestProductService_Delete_UnknownIDSucceeds(t *testing.T) {
	rec := &stubReclaimer{}
	svc := NewProductService(newStubProductRepo(), rec, zerolog.Nop())

	if err := svc.Delete(context.Background(), "never-existed"); err != nil {
		t.Fatalf("idempotent delete returned error: %v", err)
	}
	if len(rec.reclaimed) != 0 {
		t.Fatalf("nothing should be reclaimed, got %v", rec.reclaimed)
	}
}
