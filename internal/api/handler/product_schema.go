package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// productFormRequest binds the textual multipart fields shared by create and
// update. The numeric-looking fields stay strings by contract with the
// catalogue frontend and are not validated server side.
type productFormRequest struct {
	BrandName           string `form:"brandName"`
	OwnerName           string `form:"ownerName"`
	City                string `form:"city"`
	BusinessDescription string `form:"businessDescription"`
	Price               string `form:"price"`
	EstimatedFund       string `form:"estimatedFund"`
	EstimatedDividend   string `form:"estimatedDividend"`
	CompanyVideo        string `form:"companyVideo"`
	Instagram           string `form:"instagram"`
}

type createProductResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Response-only types owned by the transport layer. They are intentionally
// separate from the domain types so the JSON contract is not coupled to
// internal changes.

type imageResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	URL          string `json:"url"`
}

type productResponse struct {
	ID                  string          `json:"id"`
	BrandName           string          `json:"brandName"`
	OwnerName           string          `json:"ownerName"`
	City                string          `json:"city"`
	BusinessDescription string          `json:"businessDescription"`
	Price               string          `json:"price"`
	EstimatedFund       string          `json:"estimatedFund"`
	EstimatedDividend   string          `json:"estimatedDividend"`
	CompanyVideo        string          `json:"companyVideo"`
	Instagram           string          `json:"instagram"`
	Cover               imageResponse   `json:"cover"`
	Gallery             []imageResponse `json:"gallery"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
