package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrCoverRequired = errors.New("cover image is required")

// Image describes one stored upload. Filename is the randomized on-disk
// name; OriginalName is whatever the client sent and is never trusted as a
// path.
type Image struct {
	Filename     string `json:"filename" bson:"filename"`
	OriginalName string `json:"originalname" bson:"originalname"`
	URL          string `json:"url" bson:"url"`
}

// Product is the catalogue aggregate. ID is the service-generated UUID and
// doubles as the Mongo _id, so there is exactly one identifier in play.
//
// Price, EstimatedFund and EstimatedDividend are numeric-as-string by
// contract with the existing frontend; the server does not validate them.
type Product struct {
	ID                  string    `json:"id" bson:"_id"`
	BrandName           string    `json:"brandName" bson:"brandName"`
	OwnerName           string    `json:"ownerName" bson:"ownerName"`
	City                string    `json:"city" bson:"city"`
	BusinessDescription string    `json:"businessDescription" bson:"businessDescription"`
	Price               string    `json:"price" bson:"price"`
	EstimatedFund       string    `json:"estimatedFund" bson:"estimatedFund"`
	EstimatedDividend   string    `json:"estimatedDividend" bson:"estimatedDividend"`
	CompanyVideo        string    `json:"companyVideo" bson:"companyVideo"`
	Instagram           string    `json:"instagram" bson:"instagram"`
	Cover               Image     `json:"cover" bson:"cover"`
	Gallery             []Image   `json:"gallery" bson:"gallery"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" bson:"updated_at"`
}
