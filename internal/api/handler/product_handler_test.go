package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/investasi/catalogue-api/internal/api/middleware"
	"github.com/investasi/catalogue-api/internal/core/domain"
	"github.com/investasi/catalogue-api/internal/core/ports"
	"github.com/investasi/catalogue-api/internal/infrastructure/storage"
)

type stubProductService struct {
	createFn func(ctx context.Context, input ports.CreateProductInput) (string, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateProductInput) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// authedContext builds an echo context carrying the identity the Auth
// middleware would have injected.
func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("email", "alice@example.com")
	c.Set("username", "alice")
	c.Set("user_id", "u1")
	c.Set("role", domain.RoleMember)
	return c
}

func setUploads(c echo.Context, u *middleware.Uploads) {
	c.Set("uploads", u)
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (string, error) {
			if input.Cover == nil || input.Cover.OriginalName != "cover.jpg" {
				t.Fatalf("unexpected cover: %+v", input.Cover)
			}
			if len(input.Gallery) != 2 {
				t.Fatalf("expected 2 gallery files, got %d", len(input.Gallery))
			}
			if input.Fields.BrandName != "Kopi Kita" {
				t.Fatalf("unexpected fields: %+v", input.Fields)
			}
			return "uuid-1", nil
		},
	}
	handler := NewProductHandler(stub)

	form := strings.NewReader("brandName=Kopi+Kita&price=125000")
	req := httptest.NewRequest(http.MethodPost, "/products", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	setUploads(c, &middleware.Uploads{
		Cover: &storage.File{Filename: "1-cover.jpg", OriginalName: "cover.jpg", URL: "/uploads/1-cover.jpg"},
		Gallery: []storage.File{
			{Filename: "2-g1.jpg", OriginalName: "g1.jpg", URL: "/uploads/2-g1.jpg"},
			{Filename: "3-g2.jpg", OriginalName: "g2.jpg", URL: "/uploads/3-g2.jpg"},
		},
	})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "uuid-1" {
		t.Fatalf("expected generated id in response, got %v", resp["id"])
	}
}

func TestProductHandler_Create_MissingCover(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewProductHandler(stub)

	form := strings.NewReader("brandName=Valid+Brand&price=100")
	req := httptest.NewRequest(http.MethodPost, "/products", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	setUploads(c, &middleware.Uploads{
		Gallery: []storage.File{{Filename: "2-g1.jpg", OriginalName: "g1.jpg"}},
	})

	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProductHandler_Create_Unauthenticated(t *testing.T) {
	e := newEcho()
	handler := NewProductHandler(&stubProductService{})

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no identity claims

	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestProductHandler_List_Success(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{
				{ID: "p1", BrandName: "A"},
				{ID: "p2", BrandName: "B"},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "p1" || resp[1]["id"] != "p2" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandler_Update_ForwardsOnlyUploadedImages(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateProductInput) error {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			if input.Cover != nil {
				t.Fatalf("no cover was uploaded, got %+v", input.Cover)
			}
			if len(input.Gallery) != 0 {
				t.Fatalf("no gallery was uploaded, got %+v", input.Gallery)
			}
			if input.Fields.BrandName != "Renamed" {
				t.Fatalf("unexpected fields: %+v", input.Fields)
			}
			return nil
		},
	}
	handler := NewProductHandler(stub)

	form := strings.NewReader("brandName=Renamed")
	req := httptest.NewRequest(http.MethodPut, "/products/p1", form)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	e := newEcho()
	called := false
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			called = true
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
