// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import "context"

// Repository persists carts.
type Repository interface {

	// Get returns the cart of userID. A missing cart is returned empty.
	Get(context context.Context, userID string) (*Cart, error)

	/*
		Mutate loads the cart of userID (creating it if absent), passes its
		lines to apply and stores the result. Concurrent calls for the same
		userID are serialized.
	*/
	Mutate(context context.Context, userID string, apply func([]Item) []Item) ([]Item, error)

	// Clear deletes the cart of userID. Clearing a missing cart is not an error.
	Clear(context context.Context, userID string) error
}
