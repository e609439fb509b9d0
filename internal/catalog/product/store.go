// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository defines the data access contract for products.
type Repository interface {

	/*
		List returns one page of products matching filter, newest first.

		Returns:
		  - []*Product: The page
		  - int: Total matching rows
		  - error: Retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error)

	// FindByID returns the product with productID or apperr NOT_FOUND.
	FindByID(context context.Context, productID string) (*Product, error)

	// FindMany returns the products whose ids appear in productIDs, keyed by id.
	// Unknown ids are simply absent from the map.
	FindMany(context context.Context, productIDs []string) (map[string]*Product, error)

	// Create inserts a product. A duplicate productId is apperr CONFLICT.
	Create(context context.Context, product *Product) error

	// Update writes every mutable field of product.
	Update(context context.Context, product *Product) error

	// Delete removes the product with productID.
	Delete(context context.Context, productID string) error
}
