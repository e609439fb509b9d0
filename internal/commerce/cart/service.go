// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/convert"
)

const (
	FieldProductID = "item.productId"
	FieldName      = "item.name"
	FieldPrice     = "item.price"
	FieldImage     = "item.image"
	FieldQuantity  = "quantity"
)

// Service implements the cart use cases.
type Service struct {
	carts  Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(carts Repository, logger *slog.Logger) *Service {
	return &Service{carts: carts, logger: logger}
}

// Get returns the cart of userID.
func (service *Service) Get(context context.Context, userID string) (*Cart, error) {
	return service.carts.Get(context, userID)
}

// AddItemInput is a merge request. Price is nil when the client omitted it
// and Quantity holds the raw delta as sent.
type AddItemInput struct {
	ProductID string
	Name      string
	Price     *float64
	Image     string
	Quantity  string
}

/*
AddItem merges Quantity units of the described product into the cart of userID.

Description: Quantity is a signed delta. Fractions are truncated toward zero.

Returns:
  - []Item: The cart lines after the merge
  - error: InvalidPayload when a line field is missing or the quantity is not a number
*/
func (service *Service) AddItem(context context.Context, userID string, input AddItemInput) ([]Item, error) {
	validator := &validate.Validator{}
	validator.Required(FieldProductID, input.ProductID).
		Required(FieldName, input.Name).
		Custom(FieldPrice, input.Price == nil, "This field is required").
		Required(FieldImage, input.Image).
		Numeric(FieldQuantity, input.Quantity)
	if input.Price != nil {
		validator.NonNegative(FieldPrice, *input.Price)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	delta, ok := convert.Truncate(input.Quantity)
	if !ok {
		return nil, apperr.InvalidPayload("Invalid quantity", apperr.FieldError{Field: FieldQuantity, Message: "Must be a number"})
	}
	item := Item{
		ProductID: strings.TrimSpace(input.ProductID),
		Name:      strings.TrimSpace(input.Name),
		Price:     *input.Price,
		Image:     strings.TrimSpace(input.Image),
	}

	items, err := service.carts.Mutate(context, userID, func(current []Item) []Item {
		return Merge(current, item, delta)
	})
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "cart_item_merged",
		slog.String("product_id", item.ProductID),
		slog.Int("delta", delta),
	)
	return items, nil
}

// Clear empties the cart of userID.
func (service *Service) Clear(context context.Context, userID string) error {
	if err := service.carts.Clear(context, userID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "cart_cleared")
	return nil
}
