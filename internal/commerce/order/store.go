// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import "context"

// Repository persists orders.
type Repository interface {

	/*
		Create assigns the next order number to order and inserts it.

		Reading the last number and inserting the new order happen atomically,
		so concurrent checkouts never share a number.
	*/
	Create(context context.Context, order *Order) error

	// List returns one page of orders, newest first. An empty userID lists every order.
	List(context context.Context, userID string, limit, offset int) ([]*Order, int, error)

	FindByNumber(context context.Context, orderNumber string) (*Order, error)

	// Update sets the status and notes of an order. Nil fields are left unchanged.
	Update(context context.Context, orderNumber string, status *Status, notes *string) (*Order, error)
}
