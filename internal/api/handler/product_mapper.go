package handler

import (
	"github.com/investasi/catalogue-api/internal/api/middleware"
	"github.com/investasi/catalogue-api/internal/core/domain"
	"github.com/investasi/catalogue-api/internal/core/ports"
	"github.com/investasi/catalogue-api/internal/infrastructure/storage"
)

// --- Request → Service input ---

func toProductFields(req productFormRequest) ports.ProductFields {
	return ports.ProductFields{
		BrandName:           req.BrandName,
		OwnerName:           req.OwnerName,
		City:                req.City,
		BusinessDescription: req.BusinessDescription,
		Price:               req.Price,
		EstimatedFund:       req.EstimatedFund,
		EstimatedDividend:   req.EstimatedDividend,
		CompanyVideo:        req.CompanyVideo,
		Instagram:           req.Instagram,
	}
}

func toImageInput(f storage.File) ports.ImageInput {
	return ports.ImageInput{
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		URL:          f.URL,
	}
}

func toImageInputs(uploads *middleware.Uploads) (cover *ports.ImageInput, gallery []ports.ImageInput) {
	if uploads.Cover != nil {
		in := toImageInput(*uploads.Cover)
		cover = &in
	}
	for _, f := range uploads.Gallery {
		gallery = append(gallery, toImageInput(f))
	}
	return cover, gallery
}

// --- Domain → HTTP response ---

func toImageResponse(img domain.Image) imageResponse {
	return imageResponse{
		Filename:     img.Filename,
		OriginalName: img.OriginalName,
		URL:          img.URL,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	gallery := make([]imageResponse, len(p.Gallery))
	for i, img := range p.Gallery {
		gallery[i] = toImageResponse(img)
	}
	return productResponse{
		ID:                  p.ID,
		BrandName:           p.BrandName,
		OwnerName:           p.OwnerName,
		City:                p.City,
		BusinessDescription: p.BusinessDescription,
		Price:               p.Price,
		EstimatedFund:       p.EstimatedFund,
		EstimatedDividend:   p.EstimatedDividend,
		CompanyVideo:        p.CompanyVideo,
		Instagram:           p.Instagram,
		Cover:               toImageResponse(p.Cover),
		Gallery:             gallery,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
