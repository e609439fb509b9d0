// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/pointer"
	"github.com/taibuivan/microcctv/pkg/query"
)

const maxNameLength = 200

// Service implements catalog browsing and administration.
type Service struct {
	products Repository
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(products Repository, logger *slog.Logger) *Service {
	return &Service{products: products, logger: logger}
}

// # Browsing

// List returns one page of products. Non-admin callers only see available ones.
func (service *Service) List(context context.Context, search string, isAdmin bool, limit, offset int) ([]*Product, int, error) {
	return service.products.List(context, Filter{Search: search, AvailableOnly: !isAdmin}, limit, offset)
}

// Get returns one product. Hidden products look missing to non-admin callers.
func (service *Service) Get(context context.Context, productID string, isAdmin bool) (*Product, error) {
	product, err := service.products.FindByID(context, productID)
	if err != nil {
		return nil, err
	}

	if !product.IsAvailable && !isAdmin {
		return nil, apperr.NotFound(productResource)
	}

	return product, nil
}

// # Administration

// CreateInput describes a new product. Nil numeric fields take their defaults.
type CreateInput struct {
	ProductID   string
	Name        string
	AltNames    []string
	LabelPrice  float64
	Price       float64
	Images      []string
	Description string
	Stock       *int
	Category    string
	IsAvailable *bool
}

func cleanList(values []string) []string {
	if cleaned := query.Clean(values); cleaned != nil {
		return cleaned
	}
	return []string{}
}

func validateProduct(product *Product) error {
	validator := &validate.Validator{}
	validator.Required(FieldProductID, product.ProductID).
		Required(FieldName, product.Name).
		MaxLen(FieldName, product.Name, maxNameLength).
		Required(FieldDescription, product.Description).
		Required(FieldCategory, product.Category).
		NonNegative(FieldPrice, product.Price).
		NonNegative(FieldLabelPrice, product.LabelPrice).
		Custom(FieldStock, product.Stock < 0, "Must not be negative")

	return validator.Err()
}

/*
Create validates and stores a product.

Description: stock defaults to 0, isAvailable to true and images to a single
placeholder.

Returns:
  - *Product: The stored product
  - error: InvalidPayload, Conflict (duplicate productId) or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Product, error) {
	product := &Product{
		ProductID:   strings.TrimSpace(input.ProductID),
		Name:        strings.TrimSpace(input.Name),
		AltNames:    cleanList(input.AltNames),
		LabelPrice:  input.LabelPrice,
		Price:       input.Price,
		Images:      cleanList(input.Images),
		Description: strings.TrimSpace(input.Description),
		Stock:       pointer.Fallback(input.Stock, 0),
		Category:    strings.TrimSpace(input.Category),
		IsAvailable: pointer.Fallback(input.IsAvailable, true),
	}

	if len(product.Images) == 0 {
		product.Images = []string{DefaultImage}
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := service.products.Create(context, product); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_created", slog.String("product_id", product.ProductID))
	return product, nil
}

// UpdateInput is a partial product update. Nil fields stay unchanged.
type UpdateInput struct {
	Name        *string
	AltNames    *[]string
	LabelPrice  *float64
	Price       *float64
	Images      *[]string
	Description *string
	Stock       *int
	Category    *string
	IsAvailable *bool
}

// Update applies a partial update to the product with productID.
func (service *Service) Update(context context.Context, productID string, input UpdateInput) (*Product, error) {
	product, err := service.products.FindByID(context, productID)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(pointer.Fallback(input.Name, product.Name))
	product.LabelPrice = pointer.Fallback(input.LabelPrice, product.LabelPrice)
	product.Price = pointer.Fallback(input.Price, product.Price)
	product.Description = strings.TrimSpace(pointer.Fallback(input.Description, product.Description))
	product.Stock = pointer.Fallback(input.Stock, product.Stock)
	product.Category = strings.TrimSpace(pointer.Fallback(input.Category, product.Category))
	product.IsAvailable = pointer.Fallback(input.IsAvailable, product.IsAvailable)

	if input.AltNames != nil {
		product.AltNames = cleanList(*input.AltNames)
	}
	if input.Images != nil {
		product.Images = cleanList(*input.Images)
		if len(product.Images) == 0 {
			product.Images = []string{DefaultImage}
		}
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := service.products.Update(context, product); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_updated", slog.String("product_id", product.ProductID))
	return product, nil
}

// Delete removes the product with productID.
func (service *Service) Delete(context context.Context, productID string) error {
	if err := service.products.Delete(context, productID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "product_deleted", slog.String("product_id", productID))
	return nil
}
