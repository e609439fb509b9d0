// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/taibuivan/microcctv/internal/catalog/product"
	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/slice"
	"github.com/taibuivan/microcctv/pkg/uuid"
)

// ProductFinder resolves the catalog entries an order is built from.
type ProductFinder interface {
	FindMany(context context.Context, productIDs []string) (map[string]*product.Product, error)
}

// Service implements the order use cases.
type Service struct {
	orders   Repository
	products ProductFinder
	logger   *slog.Logger
}

// NewService constructs a new [Service].
func NewService(orders Repository, products ProductFinder, logger *slog.Logger) *Service {
	return &Service{orders: orders, products: products, logger: logger}
}

// ItemInput is one requested line of a checkout.
type ItemInput struct {
	ProductID string
	Quantity  int
}

// CreateInput is a checkout request.
type CreateInput struct {
	Items   []ItemInput
	Address string
	Phone   string
	Notes   string
}

/*
Create places an order for the caller.

Description: Name, image and price of every line are copied from the catalog
now. The total is the sum of price times quantity, rounded to cents.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Buyer, must carry a durable key)
  - input: CreateInput

Returns:
  - *Order: The placed order with its number
  - error: InvalidPayload for malformed input or an unknown product id
*/
func (service *Service) Create(context context.Context, claims *sec.AuthClaims, input CreateInput) (*Order, error) {
	address := strings.TrimSpace(input.Address)
	phone := strings.TrimSpace(input.Phone)

	validator := &validate.Validator{}
	validator.Custom(FieldItems, len(input.Items) == 0, "At least one item is required").
		Required(FieldAddress, address).
		Required(FieldPhone, phone)
	for index, item := range input.Items {
		validator.Required(fmt.Sprintf("items[%d].productId", index), item.ProductID).
			Custom(fmt.Sprintf("items[%d].qty", index), item.Quantity < 1, "Must be at least 1")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	productIDs := slice.Map(input.Items, func(item ItemInput) string { return item.ProductID })
	products, err := service.products.FindMany(context, productIDs)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(input.Items))
	for index, requested := range input.Items {
		entry, ok := products[requested.ProductID]
		if !ok {
			return nil, apperr.InvalidPayload("Invalid product Id : "+requested.ProductID, apperr.FieldError{
				Field:   fmt.Sprintf("items[%d].productId", index),
				Message: "Unknown product",
			})
		}

		image := product.DefaultImage
		if len(entry.Images) > 0 {
			image = entry.Images[0]
		}

		items = append(items, Item{
			ProductID:   entry.ProductID,
			ProductName: entry.Name,
			Image:       image,
			Price:       entry.Price,
			Quantity:    requested.Quantity,
		})
	}

	total := slice.Reduce(items, 0.0, func(sum float64, item Item) float64 {
		return sum + item.Subtotal()
	})

	order := &Order{
		ID:      uuid.New(),
		UserID:  claims.UserID,
		Email:   claims.Email,
		Name:    claims.FullName(),
		Address: address,
		Phone:   phone,
		Items:   items,
		Total:   math.Round(total*100) / 100,
		Status:  StatusPending,
		Notes:   strings.TrimSpace(input.Notes),
	}

	if err := service.orders.Create(context, order); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "order_created",
		slog.String("order_number", order.OrderNumber),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.Total),
	)
	return order, nil
}

// List returns one page of orders. Administrators see every order, everyone
// else only their own.
func (service *Service) List(context context.Context, claims *sec.AuthClaims, limit, offset int) ([]*Order, int, error) {
	ownerID := claims.UserID
	if sec.IsAdmin(claims) {
		ownerID = ""
	}
	return service.orders.List(context, ownerID, limit, offset)
}

// Get returns one order to its owner or to an administrator.
func (service *Service) Get(context context.Context, claims *sec.AuthClaims, orderNumber string) (*Order, error) {
	order, err := service.orders.FindByNumber(context, orderNumber)
	if err != nil {
		return nil, err
	}

	if !sec.IsOwnerOrAdmin(claims, order.UserID) {
		return nil, apperr.Forbidden("You can only view your own orders")
	}

	return order, nil
}

// UpdateInput carries the administrator editable fields. Nil means unchanged.
type UpdateInput struct {
	Status *string
	Notes  *string
}

// Update changes the status and notes of an order.
func (service *Service) Update(context context.Context, orderNumber string, input UpdateInput) (*Order, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldStatus, input.Status == nil && input.Notes == nil, "Provide a status or notes")
	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, Statuses...)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var status *Status
	if input.Status != nil {
		value := Status(*input.Status)
		status = &value
	}

	order, err := service.orders.Update(context, orderNumber, status, input.Notes)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "order_updated",
		slog.String("order_number", order.OrderNumber),
		slog.String("status", string(order.Status)),
	)
	return order, nil
}
