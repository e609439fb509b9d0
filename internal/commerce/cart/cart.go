// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cart keeps one shopping cart per identity.

Quantities are merged rather than overwritten: adding a product that is
already in the cart changes its quantity by the requested delta, and a line
whose quantity drops to zero or below disappears. Sending a negative delta is
therefore how a client removes items.
*/
package cart

import (
	"slices"
	"time"
)

// Item is one cart line. ProductID is unique within a cart.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the identity's ordered list of lines.
type Cart struct {
	UserID    string    `json:"userId"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

/*
Merge applies delta units of item to items and returns the new line list.

  - An existing line gains delta. It is dropped when the result is <= 0.
  - A new line is appended only when delta > 0.
  - A new line with delta <= 0 leaves items unchanged.

The input slice is never modified.
*/
func Merge(items []Item, item Item, delta int) []Item {
	merged := slices.Clone(items)
	if merged == nil {
		merged = []Item{}
	}

	index := slices.IndexFunc(merged, func(line Item) bool { return line.ProductID == item.ProductID })
	if index < 0 {
		if delta > 0 {
			item.Quantity = delta
			merged = append(merged, item)
		}
		return merged
	}

	merged[index].Quantity += delta
	if merged[index].Quantity <= 0 {
		merged = slices.Delete(merged, index, index+1)
	}

	return merged
}
