// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package order implements checkout and order administration.

Each order gets a human-facing number made of a fixed prefix and a zero padded
counter, derived from the most recently created order. Line items are copied
from the catalog at checkout and never re-derived.
*/
package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// NumberPrefix starts every order number.
	NumberPrefix = "CBC"

	// FirstNumber is issued when no order exists yet.
	FirstNumber = "CBC00202"

	numberWidth = 5
)

// Status is the fulfilment state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every status an administrator may assign.
var Statuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusCancelled),
}

// Item is a line of an order, snapshotted from the catalog.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"qty"`
}

// Subtotal is Price times Quantity.
func (item Item) Subtotal() float64 {
	return item.Price * float64(item.Quantity)
}

// Order is a placed order.
type Order struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderId"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Items       []Item    `json:"items"`
	Total       float64   `json:"total"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"date"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

/*
NextOrderNumber derives the number that follows last.

An empty last means no order exists yet and yields [FirstNumber]. The counter
is padded to five digits and grows past that width rather than wrapping.

Returns:
  - string: The next order number, e.g. "CBC00203" after "CBC00202"
  - error: When last does not carry the prefix or a numeric counter
*/
func NextOrderNumber(last string) (string, error) {
	if last == "" {
		return FirstNumber, nil
	}

	counter, found := strings.CutPrefix(last, NumberPrefix)
	if !found {
		return "", fmt.Errorf("order_number_malformed: %q", last)
	}

	value, err := strconv.Atoi(counter)
	if err != nil || value < 0 {
		return "", fmt.Errorf("order_number_malformed: %q", last)
	}

	return fmt.Sprintf("%s%0*d", NumberPrefix, numberWidth, value+1), nil
}

// Field names used in validation errors.
const (
	FieldItems   = "items"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldStatus  = "status"
	FieldNotes   = "notes"
)
